package toggler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferEmpty(t *testing.T) {
	t.Parallel()
	buf := NewBuffer("")
	require.Equal(t, 0, buf.LastLine())
	require.Equal(t, "", buf.GetLine(0))
	require.Equal(t, "", buf.GetValue())
	require.Equal(t, "", buf.GetSelection())
}

func TestBufferReplaceRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		doc  string
		text string
		from Position
		to   Position
		want string
	}{
		{
			name: "within_line",
			doc:  "abc [[x]] def",
			text: "![[x]]",
			from: Position{Ch: 4},
			to:   Position{Ch: 9},
			want: "abc ![[x]] def",
		},
		{
			name: "across_lines",
			doc:  "one\ntwo\nthree",
			text: "X",
			from: Position{Line: 0, Ch: 1},
			to:   Position{Line: 2, Ch: 2},
			want: "oXree",
		},
		{
			name: "insert_newlines",
			doc:  "ab",
			text: "1\n2",
			from: Position{Ch: 1},
			to:   Position{Ch: 1},
			want: "a1\n2b",
		},
		{
			name: "reversed_positions",
			doc:  "hello",
			text: "J",
			from: Position{Ch: 1},
			to:   Position{Ch: 0},
			want: "Jello",
		},
		{
			name: "clamped",
			doc:  "ab\ncd",
			text: "Z",
			from: Position{Line: 1, Ch: 1},
			to:   Position{Line: 9, Ch: 9},
			want: "ab\ncZ",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			buf := NewBuffer(tc.doc)
			buf.ReplaceRange(tc.text, tc.from, tc.to)
			require.Equal(t, tc.want, buf.GetValue())
			require.Equal(t, strings.Count(tc.want, "\n"), buf.LastLine())
		})
	}
}

func TestBufferSelection(t *testing.T) {
	t.Parallel()
	buf := NewBuffer("alpha\nbeta\ngamma")
	buf.SetSelection(Position{Line: 2, Ch: 3}, Position{Line: 0, Ch: 2})
	require.Equal(t, "pha\nbeta\ngam", buf.GetSelection())
	require.Equal(t, Position{Line: 2, Ch: 3}, buf.GetCursorAt(Anchor))
	require.Equal(t, Position{Line: 0, Ch: 2}, buf.GetCursorAt(Head))
	require.Equal(t, buf.GetCursorAt(Head), buf.GetCursor())

	buf.SetSelection(Position{Line: 1, Ch: 1}, Position{Line: 1, Ch: 3})
	require.Equal(t, "et", buf.GetSelection())

	buf.SetCursor(Position{Line: 1, Ch: 40})
	require.Equal(t, Position{Line: 1, Ch: 4}, buf.GetCursor())
	require.Equal(t, "", buf.GetSelection())
}

func TestReadBuffer(t *testing.T) {
	t.Parallel()
	buf, err := ReadBuffer(strings.NewReader("[[a]]\n"))
	require.NoError(t, err)
	require.Equal(t, 1, buf.LastLine())

	_, err = ReadBuffer(strings.NewReader("bad\x00data"))
	require.ErrorIs(t, err, ErrBinaryInput)

	_, err = ReadBuffer(nil)
	require.Error(t, err)
}
