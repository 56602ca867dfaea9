package toggler

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports a document that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports a document that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

// A document with at least minBinarySample bytes is binary when control
// bytes make up maxControlPct percent or more of it.
const (
	minBinarySample = 64
	maxControlPct   = 2
)

// DocumentError locates the first byte that made a document unusable.
// Pos uses the same line and byte offset as the rest of the package.
type DocumentError struct {
	Pos Position
	Err error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Pos.Line, e.Pos.Ch, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// ValidateDocument checks that src can be edited as text. Invalid UTF-8 and
// NUL bytes are reported as a *DocumentError wrapping ErrInvalidUTF8 or
// ErrBinaryInput; a document that is merely noisy with control bytes yields
// ErrBinaryInput without a position.
func ValidateDocument(src []byte) error {
	var pos Position
	control := 0
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			return &DocumentError{Pos: pos, Err: ErrInvalidUTF8}
		case r == 0:
			return &DocumentError{Pos: pos, Err: ErrBinaryInput}
		case r == '\n':
			pos.Line++
			pos.Ch = 0
			i += size
			continue
		case size == 1 && isControlByte(src[i]):
			control++
		}
		pos.Ch += size
		i += size
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

// isControlByte excludes tab, newline, vertical tab, form feed and carriage return.
func isControlByte(b byte) bool {
	return b < 0x09 || (b > 0x0D && b < 0x20) || b == 0x7F
}
