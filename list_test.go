package toggler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	tokens := ScanDocument(NewBuffer("Some text [[Note A]]\n![[img.png|200]]"))
	require.NoError(t, List(ListRequest{Tokens: tokens, Writer: &out}))
	require.Equal(t, "0:10-20 link  Note A\n1:0-16 embed img.png|200\n", out.String())
}

func TestListFitsWidth(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	tokens := ScanLine("[[Some/Very/Long/Path/To/A/Note|Alias]]", 0)
	require.NoError(t, List(ListRequest{Tokens: tokens, Writer: &out, Width: 24}))
	line := strings.TrimSuffix(out.String(), "\n")
	require.Equal(t, "0:0-39 link  Some/Very/…", line)
	require.LessOrEqual(t, len([]rune(line)), 24)
}

func TestListColor(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	require.NoError(t, List(ListRequest{Tokens: ScanLine("![[a]]", 0), Writer: &out, Color: true}))
	require.Contains(t, out.String(), "\x1b[")
	require.Contains(t, out.String(), "embed")
}

func TestListNilWriter(t *testing.T) {
	t.Parallel()
	require.Error(t, List(ListRequest{}))
}

func TestFitTarget(t *testing.T) {
	t.Parallel()
	require.Equal(t, "Note", fitTarget("Note", 10))
	require.Equal(t, "Folder/Note", fitTarget("Folder/Note|Alias", 11))
	require.Equal(t, "Folde…", fitTarget("Folder/Note|Alias", 6))
	require.Equal(t, "…", fitTarget("Folder", 1))
	require.Equal(t, "", fitTarget("Folder", 0))
}

func TestFitTargetWideRunes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		target string
		limit  int
		want   string
	}{
		{target: "日本語日本語", limit: 6, want: "日本…"},
		{target: "日本語日本語", limit: 12, want: "日本語日本語"},
		{target: "日本語|alias", limit: 6, want: "日本語"},
		{target: "日本語", limit: 2, want: "…"},
		{target: "a日本", limit: 4, want: "a日…"},
	}
	for _, tc := range tests {
		got := fitTarget(tc.target, tc.limit)
		require.Equal(t, tc.want, got, "%s/%d", tc.target, tc.limit)
		require.LessOrEqual(t, runewidth.StringWidth(got), tc.limit)
	}
}

func TestListFitsWideTargets(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	tokens := ScanLine("[[日本語のノート]]", 0)
	require.NoError(t, List(ListRequest{Tokens: tokens, Writer: &out, Width: 20}))
	line := strings.TrimSuffix(out.String(), "\n")
	require.Equal(t, "0:0-25 link  日本語…", line)
	require.LessOrEqual(t, runewidth.StringWidth(line), 20)
}
