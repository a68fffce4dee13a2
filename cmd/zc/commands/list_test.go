package commands

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_ShowsLibrary(t *testing.T) {
	setupWorkDir(t)

	out, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Skills")
	assert.Contains(t, out, "Agents")
	assert.Contains(t, out, "code-review")
	assert.Contains(t, out, "Review checklist")
	assert.Contains(t, out, "reviewer")
	assert.Contains(t, out, "Reviews pull requests")
}

func TestList_CategoryFilter(t *testing.T) {
	setupWorkDir(t)

	out, err := execute(t, "list", "--category", "doc")
	require.NoError(t, err)

	assert.Contains(t, out, "doc-search")
	assert.NotContains(t, out, "code-review")
}

func TestList_NoTemplates(t *testing.T) {
	testChdir(t, t.TempDir())

	_, err := execute(t, "list")
	require.Error(t, err)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"this is too long", 10, "this is..."},
		{"abc", 2, "ab"},
		{"héllo wörld, ça va bien", 10, "héllo w..."},
		{"日本語の説明文です", 5, "日本..."},
		{"héllo", 10, "héllo"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
		if !utf8.ValidString(truncate(tt.in, tt.maxLen)) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.in, tt.maxLen)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)

	if !strings.Contains(out, "zc version") {
		t.Errorf("output = %q", out)
	}
	assert.Contains(t, out, "commit:")
	assert.Contains(t, out, "built:")
}
