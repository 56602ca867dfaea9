package toggler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrontMatterEnd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want int
	}{
		{name: "yaml", src: "---\ntitle: Post\ndate: 2026-02-09\n---\n\n# Hello\n", want: 4},
		{name: "toml", src: "+++\ntitle = \"Post\"\n+++\n# Hello\n", want: 3},
		{name: "json", src: ";;;\n{\"title\": \"Post\"}\n;;;\n# Hello\n", want: 3},
		{name: "crlf_bom", src: "\ufeff---\r\ntitle: Post\r\n---\r\nBody\r\n", want: 3},
		{name: "not_at_start", src: "# Intro\n\n+++\ntitle = \"Keep me\"\n+++\n"},
		{name: "unclosed", src: "---\ntitle: Post\n\n# Hello\n"},
		{name: "no_metadata", src: "---\n# Keep\n---\n\nTail\n"},
		{name: "too_short", src: "---\n---"},
		{name: "empty", src: ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, frontMatterEnd(lineSlice(strings.Split(tc.src, "\n"))))
		})
	}
}
