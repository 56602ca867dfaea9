package toggler

// Range is a normalized selection with Start not after End.
type Range struct {
	Start Position
	End   Position
}

// NormalizeRange orders two selection endpoints given in any order.
func NormalizeRange(anchor, head Position) Range {
	if head.Before(anchor) {
		return Range{Start: head, End: anchor}
	}
	return Range{Start: anchor, End: head}
}

// SingleLine reports whether the range starts and ends on the same line.
func (r Range) SingleLine() bool {
	return r.Start.Line == r.End.Line
}

// includes applies the selection containment rules to tok.
//
// On a single-line selection the token must lie fully between the two
// offsets. On a multi-line selection the first line only bounds the start,
// the last line only bounds the end, and interior lines take every token.
func (r Range) includes(tok Token) bool {
	switch {
	case tok.Line < r.Start.Line || tok.Line > r.End.Line:
		return false
	case r.SingleLine():
		return tok.Start >= r.Start.Ch && tok.End <= r.End.Ch
	case tok.Line == r.Start.Line:
		return tok.Start >= r.Start.Ch
	case tok.Line == r.End.Line:
		return tok.End <= r.End.Ch
	default:
		return true
	}
}

// TokensInRange returns the tokens of doc selected by r, in line order.
func TokensInRange(doc Lines, r Range) []Token {
	return tokensInRange(scannerFor(doc), doc.LastLine(), r)
}

func tokensInRange(scan lineScanner, lastLine int, r Range) []Token {
	first, last := r.Start.Line, r.End.Line
	if first < 0 {
		first = 0
	}
	if last > lastLine {
		last = lastLine
	}
	var out []Token
	for i := first; i <= last; i++ {
		for _, tok := range scan(i) {
			if r.includes(tok) {
				out = append(out, tok)
			}
		}
	}
	return out
}
