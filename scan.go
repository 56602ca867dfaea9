package toggler

// ScanLine returns every token in line, left to right.
func ScanLine(line string, lineIndex int) []Token {
	matches := linkPattern.FindAllStringIndex(line, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, newToken(line[m[0]:m[1]], lineIndex, m[0], m[1]))
	}
	return tokens
}

// TokenAt returns the first token in line containing ch.
func TokenAt(line string, lineIndex, ch int) (Token, bool) {
	return firstContaining(ScanLine(line, lineIndex), ch)
}

func firstContaining(tokens []Token, ch int) (Token, bool) {
	for _, tok := range tokens {
		if tok.Contains(ch) {
			return tok, true
		}
		if tok.Start > ch {
			break
		}
	}
	return Token{}, false
}

// ScanDocument returns every token in doc in line order, as a Toggler with
// default options sees them.
func ScanDocument(doc Lines) []Token {
	return New().Scan(doc)
}
