// Package tui is a minimal terminal host for the toggle commands.
package tui

import (
	"context"
	"fmt"
	"unicode/utf8"

	toggler "github.com/aikruger/transclusion-toggler"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Config configures Run.
type Config struct {
	Buffer  *toggler.Buffer
	Toggler *toggler.Toggler
	Title   string
	// Save persists the document. Saving is disabled when nil.
	Save func(text string) error
}

var (
	styleText      = tcell.StyleDefault
	styleLink      = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleEmbed     = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleStatus    = tcell.StyleDefault.Reverse(true)
)

// Run opens the terminal screen and edits cfg.Buffer until the user quits or
// ctx is done.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Buffer == nil {
		return fmt.Errorf("tui: buffer is nil")
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	defer s.Fini()

	stop := context.AfterFunc(ctx, func() {
		_ = s.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	return newApp(s, cfg).loop(ctx)
}

type app struct {
	screen    tcell.Screen
	buf       *toggler.Buffer
	tg        *toggler.Toggler
	title     string
	save      func(string) error
	top       int
	selecting bool
	anchor    toggler.Position
	dirty     bool
	status    string
}

func newApp(s tcell.Screen, cfg Config) *app {
	tg := cfg.Toggler
	if tg == nil {
		tg = toggler.New()
	}
	return &app{
		screen: s,
		buf:    cfg.Buffer,
		tg:     tg,
		title:  cfg.Title,
		save:   cfg.Save,
		status: "t toggle  a toggle all  v select  s save  q quit",
	}
}

func (a *app) loop(ctx context.Context) error {
	for {
		a.render()
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			return ctx.Err()
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey applies one key press and reports whether the app should exit.
func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		a.moveHorizontal(-1)
	case tcell.KeyRight:
		a.moveHorizontal(1)
	case tcell.KeyUp:
		a.moveVertical(-1)
	case tcell.KeyDown:
		a.moveVertical(1)
	case tcell.KeyHome:
		cur := a.buf.GetCursor()
		a.moveTo(toggler.Position{Line: cur.Line})
	case tcell.KeyEnd:
		cur := a.buf.GetCursor()
		a.moveTo(toggler.Position{Line: cur.Line, Ch: len(a.buf.GetLine(cur.Line))})
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 't':
			a.runCommand(toggler.CommandToggleCurrent)
		case 'a':
			a.runCommand(toggler.CommandToggleAll)
		case 'v':
			a.selecting = !a.selecting
			a.anchor = a.buf.GetCursor()
			a.buf.SetCursor(a.anchor)
		case 's':
			a.doSave()
		}
	}
	return false
}

func (a *app) runCommand(id string) {
	res, ok := a.tg.Run(id, a.buf)
	if !ok {
		a.status = "unknown command " + id
		return
	}
	if res.Toggled() == 0 {
		a.status = res.Reason
	} else {
		a.dirty = true
		a.status = fmt.Sprintf("toggled %d link(s)", res.Toggled())
	}
	a.selecting = false
	a.buf.SetCursor(a.buf.GetCursor())
}

func (a *app) doSave() {
	if a.save == nil {
		a.status = "no file to save to"
		return
	}
	if err := a.save(a.buf.GetValue()); err != nil {
		a.status = "save failed: " + err.Error()
		return
	}
	a.dirty = false
	a.status = "saved"
}

func (a *app) moveTo(pos toggler.Position) {
	if a.selecting {
		a.buf.SetSelection(a.anchor, pos)
		return
	}
	a.buf.SetCursor(pos)
}

func (a *app) moveHorizontal(dir int) {
	cur := a.buf.GetCursor()
	line := a.buf.GetLine(cur.Line)
	switch {
	case dir < 0 && cur.Ch > 0:
		_, size := utf8.DecodeLastRuneInString(line[:cur.Ch])
		cur.Ch -= size
	case dir < 0 && cur.Line > 0:
		cur.Line--
		cur.Ch = len(a.buf.GetLine(cur.Line))
	case dir > 0 && cur.Ch < len(line):
		_, size := utf8.DecodeRuneInString(line[cur.Ch:])
		cur.Ch += size
	case dir > 0 && cur.Line < a.buf.LastLine():
		cur.Line++
		cur.Ch = 0
	}
	a.moveTo(cur)
}

func (a *app) moveVertical(dir int) {
	cur := a.buf.GetCursor()
	next := cur.Line + dir
	if next < 0 || next > a.buf.LastLine() {
		return
	}
	col := runewidth.StringWidth(a.buf.GetLine(cur.Line)[:cur.Ch])
	a.moveTo(toggler.Position{Line: next, Ch: offsetForColumn(a.buf.GetLine(next), col)})
}

// offsetForColumn returns the byte offset of the last rune boundary in line
// whose display column does not exceed col.
func offsetForColumn(line string, col int) int {
	width := 0
	for i, r := range line {
		w := runewidth.RuneWidth(r)
		if width+w > col {
			return i
		}
		width += w
	}
	return len(line)
}

func (a *app) render() {
	s := a.screen
	s.Clear()
	w, h := s.Size()
	rows := h - 1
	if rows < 1 {
		s.Show()
		return
	}
	cur := a.buf.GetCursor()
	if cur.Line < a.top {
		a.top = cur.Line
	}
	if cur.Line >= a.top+rows {
		a.top = cur.Line - rows + 1
	}

	var sel toggler.Range
	hasSel := a.buf.GetSelection() != ""
	if hasSel {
		sel = toggler.NormalizeRange(a.buf.GetCursorAt(toggler.Anchor), a.buf.GetCursorAt(toggler.Head))
	}

	for y := 0; y < rows; y++ {
		idx := a.top + y
		if idx > a.buf.LastLine() {
			break
		}
		line := a.buf.GetLine(idx)
		tokens := toggler.ScanLine(line, idx)
		x := 0
		for off, r := range line {
			if x >= w {
				break
			}
			style := styleText
			for _, tok := range tokens {
				if off >= tok.Start && off < tok.End {
					style = styleLink
					if tok.Embed {
						style = styleEmbed
					}
					break
				}
			}
			if hasSel && inRange(sel, toggler.Position{Line: idx, Ch: off}) {
				style = styleSelection
			}
			s.SetContent(x, y, r, nil, style)
			x += runewidth.RuneWidth(r)
		}
	}

	a.drawStatus(w, h-1)
	s.ShowCursor(runewidth.StringWidth(a.buf.GetLine(cur.Line)[:cur.Ch]), cur.Line-a.top)
	s.Show()
}

func (a *app) drawStatus(w, y int) {
	cur := a.buf.GetCursor()
	title := a.title
	if a.dirty {
		title += " [+]"
	}
	text := fmt.Sprintf(" %s  %d:%d  %s", title, cur.Line, cur.Ch, a.status)
	x := 0
	for _, r := range text {
		if x >= w {
			return
		}
		a.screen.SetContent(x, y, r, nil, styleStatus)
		x += runewidth.RuneWidth(r)
	}
	for ; x < w; x++ {
		a.screen.SetContent(x, y, ' ', nil, styleStatus)
	}
}

func inRange(r toggler.Range, p toggler.Position) bool {
	return !p.Before(r.Start) && p.Before(r.End)
}
