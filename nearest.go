package toggler

type lineScanner func(index int) []Token

func scannerFor(doc Lines) lineScanner {
	return func(index int) []Token {
		return ScanLine(doc.GetLine(index), index)
	}
}

// FindNearest locates the token to target when cursor is not inside one.
//
// The search runs forward first: tokens on the cursor line starting at or after
// the cursor, then the first token of each following line. Only when nothing
// lies ahead does it search backward: tokens on the cursor line ending at or
// before the cursor, then the last token of each preceding line.
func FindNearest(doc Lines, cursor Position) (Token, bool) {
	return findNearest(scannerFor(doc), doc.LastLine(), cursor)
}

func findNearest(scan lineScanner, lastLine int, cursor Position) (Token, bool) {
	if cursor.Line < 0 || cursor.Line > lastLine {
		return Token{}, false
	}
	if tok, ok := searchForward(scan, lastLine, cursor); ok {
		return tok, true
	}
	return searchBackward(scan, cursor)
}

func searchForward(scan lineScanner, lastLine int, cursor Position) (Token, bool) {
	for _, tok := range scan(cursor.Line) {
		if tok.Start >= cursor.Ch {
			return tok, true
		}
	}
	for i := cursor.Line + 1; i <= lastLine; i++ {
		if tokens := scan(i); len(tokens) > 0 {
			return tokens[0], true
		}
	}
	return Token{}, false
}

func searchBackward(scan lineScanner, cursor Position) (Token, bool) {
	tokens := scan(cursor.Line)
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i].End <= cursor.Ch {
			return tokens[i], true
		}
	}
	for i := cursor.Line - 1; i >= 0; i-- {
		if tokens := scan(i); len(tokens) > 0 {
			return tokens[len(tokens)-1], true
		}
	}
	return Token{}, false
}
