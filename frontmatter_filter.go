package toggler

import "strings"

// frontMatterEnd returns the number of leading lines of doc that form a
// front-matter block, or 0 when the document does not open with one.
func frontMatterEnd(doc Lines) int {
	last := doc.LastLine()
	if last < 2 {
		return 0
	}
	delim, ok := parseOpeningFrontMatterDelimiter(doc.GetLine(0))
	if !ok {
		return 0
	}
	if !frontMatterMetadataLikely(doc.GetLine(1)) {
		return 0
	}
	for i := 2; i <= last; i++ {
		if strings.TrimSpace(trimCR(doc.GetLine(i))) == delim {
			return i + 1
		}
	}
	return 0
}

func parseOpeningFrontMatterDelimiter(line string) (string, bool) {
	trimmed := strings.TrimSpace(trimBOM(trimCR(line)))
	switch trimmed {
	case "---", "+++", ";;;":
		return trimmed, true
	default:
		return "", false
	}
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}

func trimCR(s string) string {
	return strings.TrimSuffix(s, "\r")
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}

// lineSlice adapts split document text to Lines.
type lineSlice []string

func (l lineSlice) GetLine(index int) string {
	if index < 0 || index >= len(l) {
		return ""
	}
	return l[index]
}

func (l lineSlice) LastLine() int {
	return len(l) - 1
}
