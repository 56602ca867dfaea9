package toggler

import (
	"os"
	"strconv"
	"strings"
	"testing"
)

func BenchmarkToggleAllDaily(b *testing.B) {
	text := string(mustReadSample(b, "testdata/daily.md"))
	tg := New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tg.ToggleAll(NewBuffer(text))
	}
}

func BenchmarkScanDocument(b *testing.B) {
	for _, lines := range []int{100, 1000, 10000} {
		lines := lines
		b.Run(intToLinesLabel(lines), func(b *testing.B) {
			buf := NewBuffer(generatedNotes(lines))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = ScanDocument(buf)
			}
		})
	}
}

// The cursor sits at the end of a long run of link-free lines so the search
// has to walk the whole document backward.
func BenchmarkFindNearestSparse(b *testing.B) {
	for _, lines := range []int{100, 1000, 10000} {
		lines := lines
		b.Run(intToLinesLabel(lines), func(b *testing.B) {
			text := "[[First]]\n" + strings.Repeat("nothing to see here\n", lines)
			buf := NewBuffer(text)
			cursor := Position{Line: buf.LastLine()}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, ok := FindNearest(buf, cursor); !ok {
					b.Fatal("expected a token")
				}
			}
		})
	}
}

func BenchmarkRewriteLine(b *testing.B) {
	line := strings.Repeat("see [[Note]] and ![[pic.png]] ", 16)
	tokens := ScanLine(line, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RewriteLine(line, 0, tokens)
	}
}

func mustReadSample(b *testing.B, path string) []byte {
	b.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read %s: %v", path, err)
	}
	return data
}

func intToLinesLabel(lines int) string {
	return "l" + strconv.Itoa(lines)
}

func generatedNotes(lines int) string {
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		switch i % 4 {
		case 0:
			sb.WriteString("- [[Note ")
			sb.WriteString(strconv.Itoa(i))
			sb.WriteString("]] links back to ![[Image ")
			sb.WriteString(strconv.Itoa(i))
			sb.WriteString(".png]]")
		case 1:
			sb.WriteString("Plain prose with [brackets] but no wiki links at all.")
		case 2:
			sb.WriteString("![[Embedded/Section#Heading|alias]]")
		default:
			sb.WriteString("unterminated [[link on this line")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
