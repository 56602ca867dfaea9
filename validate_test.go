package toggler

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDocumentLocatesInvalidUTF8(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want Position
	}{
		{name: "first_byte", src: "\xff\xfe", want: Position{}},
		{name: "second_line", src: "[[a]]\n\xff", want: Position{Line: 1}},
		{name: "after_multibyte", src: "é\xff", want: Position{Ch: 2}},
		{name: "truncated_rune", src: "ok\nab\xe6\x97", want: Position{Line: 1, Ch: 2}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateDocument([]byte(tc.src))
			require.ErrorIs(t, err, ErrInvalidUTF8)
			var docErr *DocumentError
			require.True(t, errors.As(err, &docErr))
			require.Equal(t, tc.want, docErr.Pos)
		})
	}
}

func TestValidateDocumentLocatesNUL(t *testing.T) {
	t.Parallel()
	err := ValidateDocument([]byte("hello\r\nab\x00"))
	require.ErrorIs(t, err, ErrBinaryInput)
	var docErr *DocumentError
	require.True(t, errors.As(err, &docErr))
	require.Equal(t, Position{Line: 1, Ch: 2}, docErr.Pos)
	require.Equal(t, "1:2: binary input detected", err.Error())
}

func TestValidateDocumentRejectsControlNoise(t *testing.T) {
	t.Parallel()
	noisy := bytes.Repeat([]byte{'a', 'b', 0x01}, 40)
	err := ValidateDocument(noisy)
	require.ErrorIs(t, err, ErrBinaryInput)
	var docErr *DocumentError
	require.False(t, errors.As(err, &docErr))

	short := []byte("a\x01b")
	require.NoError(t, ValidateDocument(short))
}

func TestValidateDocumentAcceptsText(t *testing.T) {
	t.Parallel()
	require.NoError(t, ValidateDocument(nil))
	require.NoError(t, ValidateDocument([]byte("# Title\r\n\t![[a]] ünïcödé\n")))
	require.NoError(t, ValidateDocument([]byte(strings.Repeat("\f\v line\n", 20))))
}

func TestReadBufferReportsPosition(t *testing.T) {
	t.Parallel()
	_, err := ReadBuffer(strings.NewReader("[[a]]\n[[b\x00]]"))
	require.ErrorIs(t, err, ErrBinaryInput)
	require.EqualError(t, err, "read buffer: 1:3: binary input detected")
}
