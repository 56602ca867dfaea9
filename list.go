package toggler

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
)

// ListRequest configures List.
type ListRequest struct {
	Tokens []Token
	Writer io.Writer
	// Width bounds each output line; 0 disables fitting.
	Width int
	Color bool
}

// List writes one line per token: line:start-end, kind and target, with
// zero-based line numbers and byte offsets.
func List(req ListRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("list: writer is nil")
	}
	for _, tok := range req.Tokens {
		pos := strconv.Itoa(tok.Line) + ":" + strconv.Itoa(tok.Start) + "-" + strconv.Itoa(tok.End)
		kind := fmt.Sprintf("%-5s", tok.Kind())
		target := tok.Target
		if req.Width > 0 {
			target = fitTarget(target, req.Width-len(pos)-len(kind)-2)
		}
		if req.Color {
			c := color.New(color.FgCyan)
			if tok.Embed {
				c = color.New(color.FgMagenta)
			}
			c.EnableColor()
			kind = c.Sprint(kind)
		}
		if _, err := fmt.Fprintf(req.Writer, "%s %s %s\n", pos, kind, target); err != nil {
			return fmt.Errorf("list: %w", err)
		}
	}
	return nil
}
