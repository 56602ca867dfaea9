package toggler

import (
	"sort"
	"strings"
)

// Replacement is one pending edit within a single line.
type Replacement struct {
	Line   int
	FromCh int
	ToCh   int
	Text   string
}

// Replacements returns the toggle edits for tokens, ordered so they can be
// applied one by one to a live buffer: by line, and rightmost first within a
// line so that earlier offsets stay valid.
func Replacements(tokens []Token) []Replacement {
	out := make([]Replacement, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, Replacement{Line: tok.Line, FromCh: tok.Start, ToCh: tok.End, Text: Toggle(tok)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].FromCh > out[j].FromCh
	})
	return out
}

// RewriteLine toggles the tokens of line lineIndex. Token offsets refer to
// line as given; tokens from other lines are ignored.
func RewriteLine(line string, lineIndex int, tokens []Token) string {
	if len(tokens) == 0 {
		return line
	}
	out := line
	for _, rep := range Replacements(tokens) {
		if rep.Line != lineIndex {
			continue
		}
		if rep.FromCh < 0 || rep.ToCh > len(out) || rep.FromCh > rep.ToCh {
			continue
		}
		out = out[:rep.FromCh] + rep.Text + out[rep.ToCh:]
	}
	return out
}

// applyReplacements issues reps against ed in the order given.
func applyReplacements(ed Editor, reps []Replacement) {
	for _, rep := range reps {
		ed.ReplaceRange(rep.Text,
			Position{Line: rep.Line, Ch: rep.FromCh},
			Position{Line: rep.Line, Ch: rep.ToCh})
	}
}

// rewriteDocument resolves the new content of every line in memory and returns
// the lines joined with "\n" together with the tokens it toggled.
func rewriteDocument(lines []string, scan func(index int, line string) []Token) (string, []Token) {
	var toggled []Token
	for i, line := range lines {
		tokens := scan(i, line)
		if len(tokens) == 0 {
			continue
		}
		lines[i] = RewriteLine(line, i, tokens)
		toggled = append(toggled, tokens...)
	}
	return strings.Join(lines, "\n"), toggled
}
