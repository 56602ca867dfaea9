package toggler

import "strings"

// Reasons reported by commands that found nothing to toggle.
const (
	ReasonNoLinkNearCursor   = "no link at or near cursor"
	ReasonNoLinksInSelection = "no links in selection"
	ReasonNoLinksInDocument  = "no links in document"
)

// Result describes what a command did.
type Result struct {
	Command string
	// Tokens holds the toggled tokens as they were before the edit.
	Tokens []Token
	// Reason is set when nothing was toggled.
	Reason string
}

// Toggled returns the number of tokens the command rewrote.
func (r Result) Toggled() int {
	return len(r.Tokens)
}

// Toggler runs the toggle commands against an Editor.
type Toggler struct {
	cfg config
}

// New returns a Toggler configured by opts.
func New(opts ...Option) *Toggler {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Toggler{cfg: cfg}
}

// ToggleCurrent toggles the selected links, the link under the cursor, or
// the nearest link, in that order of preference.
func (t *Toggler) ToggleCurrent(ed Editor) Result {
	scan := t.scanner(ed)
	last := ed.LastLine()

	if ed.GetSelection() != "" {
		r := NormalizeRange(ed.GetCursorAt(Anchor), ed.GetCursorAt(Head))
		tokens := tokensInRange(scan, last, r)
		if len(tokens) == 0 {
			return t.noop(CommandToggleCurrent, ReasonNoLinksInSelection)
		}
		applyReplacements(ed, Replacements(tokens))
		return t.done(CommandToggleCurrent, tokens)
	}

	cursor := ed.GetCursor()
	tok, ok := tokenAtCursor(scan, last, cursor)
	if !ok {
		tok, ok = findNearest(scan, last, cursor)
	}
	if !ok {
		return t.noop(CommandToggleCurrent, ReasonNoLinkNearCursor)
	}
	ed.ReplaceRange(Toggle(tok), Position{Line: tok.Line, Ch: tok.Start}, Position{Line: tok.Line, Ch: tok.End})
	return t.done(CommandToggleCurrent, []Token{tok})
}

// ToggleAll toggles every link in the document with a single replacement of
// the whole buffer.
func (t *Toggler) ToggleAll(ed Editor) Result {
	lines := strings.Split(ed.GetValue(), "\n")
	skip := 0
	if t.cfg.skipFrontMatter {
		skip = frontMatterEnd(lineSlice(lines))
	}
	value, tokens := rewriteDocument(lines, func(index int, line string) []Token {
		if index < skip {
			return nil
		}
		return ScanLine(line, index)
	})
	if len(tokens) == 0 {
		return t.noop(CommandToggleAll, ReasonNoLinksInDocument)
	}
	last := ed.LastLine()
	ed.ReplaceRange(value, Position{}, Position{Line: last, Ch: len(ed.GetLine(last))})
	return t.done(CommandToggleAll, tokens)
}

// Scan returns every token the commands would consider in doc.
func (t *Toggler) Scan(doc Lines) []Token {
	scan := t.scanner(doc)
	var tokens []Token
	for i := 0; i <= doc.LastLine(); i++ {
		tokens = append(tokens, scan(i)...)
	}
	return tokens
}

func (t *Toggler) scanner(doc Lines) lineScanner {
	scan := scannerFor(doc)
	if !t.cfg.skipFrontMatter {
		return scan
	}
	skip := frontMatterEnd(doc)
	if skip == 0 {
		return scan
	}
	return func(index int) []Token {
		if index < skip {
			return nil
		}
		return scan(index)
	}
}

func tokenAtCursor(scan lineScanner, last int, cursor Position) (Token, bool) {
	if cursor.Line < 0 || cursor.Line > last {
		return Token{}, false
	}
	return firstContaining(scan(cursor.Line), cursor.Ch)
}

func (t *Toggler) noop(command, reason string) Result {
	t.cfg.log.Info().Str("command", command).Msg(reason)
	return Result{Command: command, Reason: reason}
}

func (t *Toggler) done(command string, tokens []Token) Result {
	t.cfg.log.Debug().Str("command", command).Int("toggled", len(tokens)).Msg("toggled links")
	return Result{Command: command, Tokens: tokens}
}
