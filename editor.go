package toggler

// Position is a line and byte offset within that line.
type Position struct {
	Line int
	Ch   int
}

// Before reports whether p sorts before q, by line then offset.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Ch < q.Ch
}

// CursorEnd selects which end of a selection GetCursorAt returns.
type CursorEnd uint8

const (
	// Head is the moving end of the selection, where the cursor sits.
	Head CursorEnd = iota
	// Anchor is the fixed end of the selection.
	Anchor
)

// Lines is read access to a document by line.
type Lines interface {
	GetLine(index int) string
	LastLine() int
}

// Editor is the host text surface the toggle commands operate on.
type Editor interface {
	Lines
	GetCursor() Position
	GetCursorAt(end CursorEnd) Position
	GetSelection() string
	GetValue() string
	ReplaceRange(text string, from, to Position)
}
