package toggler

import (
	"fmt"
	"io"
	"strings"
)

// Buffer is an in-memory Editor holding one document split into lines.
// It is not safe for concurrent use.
type Buffer struct {
	lines  []string
	anchor Position
	head   Position
}

// NewBuffer returns a Buffer holding text with the cursor at the start.
func NewBuffer(text string) *Buffer {
	return &Buffer{lines: strings.Split(text, "\n")}
}

// ReadBuffer reads a whole document from r.
func ReadBuffer(r io.Reader) (*Buffer, error) {
	if r == nil {
		return nil, fmt.Errorf("read buffer: reader is nil")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read buffer: %w", err)
	}
	if err := ValidateDocument(data); err != nil {
		return nil, fmt.Errorf("read buffer: %w", err)
	}
	return NewBuffer(string(data)), nil
}

// GetLine returns line index, or "" when it is out of range.
func (b *Buffer) GetLine(index int) string {
	if index < 0 || index >= len(b.lines) {
		return ""
	}
	return b.lines[index]
}

// LastLine returns the index of the final line.
func (b *Buffer) LastLine() int {
	return len(b.lines) - 1
}

// GetValue returns the whole document.
func (b *Buffer) GetValue() string {
	return strings.Join(b.lines, "\n")
}

// GetCursor returns the selection head.
func (b *Buffer) GetCursor() Position {
	return b.head
}

// GetCursorAt returns the requested end of the selection.
func (b *Buffer) GetCursorAt(end CursorEnd) Position {
	if end == Anchor {
		return b.anchor
	}
	return b.head
}

// GetSelection returns the selected text, or "" when anchor and head meet.
func (b *Buffer) GetSelection() string {
	r := NormalizeRange(b.anchor, b.head)
	if r.Start == r.End {
		return ""
	}
	if r.SingleLine() {
		return b.lines[r.Start.Line][r.Start.Ch:r.End.Ch]
	}
	var sb strings.Builder
	sb.WriteString(b.lines[r.Start.Line][r.Start.Ch:])
	for i := r.Start.Line + 1; i < r.End.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[i])
	}
	sb.WriteByte('\n')
	sb.WriteString(b.lines[r.End.Line][:r.End.Ch])
	return sb.String()
}

// SetCursor moves the cursor to pos and clears any selection.
func (b *Buffer) SetCursor(pos Position) {
	b.head = b.clamp(pos)
	b.anchor = b.head
}

// SetSelection selects from anchor to head.
func (b *Buffer) SetSelection(anchor, head Position) {
	b.anchor = b.clamp(anchor)
	b.head = b.clamp(head)
}

// ReplaceRange replaces the text between from and to with text. Positions
// outside the document are clamped to it.
func (b *Buffer) ReplaceRange(text string, from, to Position) {
	r := NormalizeRange(b.clamp(from), b.clamp(to))
	prefix := b.lines[r.Start.Line][:r.Start.Ch]
	suffix := b.lines[r.End.Line][r.End.Ch:]
	repl := strings.Split(prefix+text+suffix, "\n")

	lines := make([]string, 0, len(b.lines)-(r.End.Line-r.Start.Line)+len(repl)-1)
	lines = append(lines, b.lines[:r.Start.Line]...)
	lines = append(lines, repl...)
	lines = append(lines, b.lines[r.End.Line+1:]...)
	b.lines = lines
	b.anchor = b.clamp(b.anchor)
	b.head = b.clamp(b.head)
}

func (b *Buffer) clamp(pos Position) Position {
	if pos.Line < 0 {
		return Position{}
	}
	if pos.Line > b.LastLine() {
		last := b.LastLine()
		return Position{Line: last, Ch: len(b.lines[last])}
	}
	line := b.lines[pos.Line]
	if pos.Ch < 0 {
		pos.Ch = 0
	}
	if pos.Ch > len(line) {
		pos.Ch = len(line)
	}
	return pos
}
