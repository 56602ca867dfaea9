package toggler

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

const ellipsis = "…"

// truncateWithEllipsis cuts text to at most limit display columns, counting
// the trailing ellipsis.
func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	budget := limit - runewidth.StringWidth(ellipsis)
	var b strings.Builder
	width := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if width+w > budget {
			break
		}
		b.WriteRune(r)
		width += w
	}
	b.WriteString(ellipsis)
	return b.String()
}

// fitTarget shortens target to limit columns, dropping a display alias
// before truncating the path itself.
func fitTarget(target string, limit int) string {
	if ansi.PrintableRuneWidth(target) <= limit {
		return target
	}
	if idx := strings.IndexByte(target, '|'); idx != -1 {
		path := target[:idx]
		if ansi.PrintableRuneWidth(path) <= limit {
			return path
		}
		target = path
	}
	return truncateWithEllipsis(target, limit)
}
