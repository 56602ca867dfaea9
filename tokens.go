package toggler

import "regexp"

// EmbedMarker is the prefix that turns a link reference into an embed.
const EmbedMarker = '!'

const (
	openDelim  = "[["
	closeDelim = "]]"
)

var (
	linkPattern     = regexp.MustCompile(`!?\[\[[^\]]+?\]\]`)
	fullLinkPattern = regexp.MustCompile(`^!?\[\[[^\]]+?\]\]$`)
)

// Token is a bracketed reference found in a line.
//
// Start and End are byte offsets into the line as it was scanned, with End
// exclusive. They are never adjusted after a rewrite.
type Token struct {
	RawText string
	Embed   bool
	Target  string
	Line    int
	Start   int
	End     int
}

// Kind reports "embed" or "link".
func (t Token) Kind() string {
	if t.Embed {
		return "embed"
	}
	return "link"
}

// Contains reports whether ch lies within the token. Both boundaries count.
func (t Token) Contains(ch int) bool {
	return t.Start <= ch && ch <= t.End
}

// ParseToken decomposes raw when it is exactly one reference token.
func ParseToken(raw string) (Token, bool) {
	if !fullLinkPattern.MatchString(raw) {
		return Token{}, false
	}
	return newToken(raw, 0, 0, len(raw)), true
}

// newToken expects raw to have matched linkPattern.
func newToken(raw string, line, start, end int) Token {
	tok := Token{RawText: raw, Line: line, Start: start, End: end}
	if len(raw) > 0 && raw[0] == EmbedMarker {
		tok.Embed = true
		tok.Target = raw[1+len(openDelim) : len(raw)-len(closeDelim)]
	} else {
		tok.Target = raw[len(openDelim) : len(raw)-len(closeDelim)]
	}
	return tok
}

// Toggle returns the replacement text for tok with its embed marker flipped.
func Toggle(tok Token) string {
	if tok.Embed {
		return openDelim + tok.Target + closeDelim
	}
	return string(EmbedMarker) + openDelim + tok.Target + closeDelim
}
