package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testChdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup.
func testChdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

// setupWorkDir chdirs into a fresh project directory containing a small
// template library and returns its path.
func setupWorkDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testChdir(t, dir)

	write := func(rel, content string) {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	write("templates/skills/code-review/SKILL.md",
		"---\nname: code-review\ndescription: Review checklist\n---\n\n# Code Review\n")
	write("templates/skills/doc-search/SKILL.md",
		"---\nname: doc-search\ndescription: Search project docs\n---\n\n# Doc Search\n")
	write("templates/skills/doc-search/data/stopwords.csv", "a\nthe\n")
	write("templates/skills/doc-search/scripts/search.py", "print('search')\n")
	write("templates/agents/reviewer.agent.md",
		"---\ndescription: Reviews pull requests\n---\n\nReview carefully.\n")
	return dir
}

func TestInit_InstallsForSingleTarget(t *testing.T) {
	dir := setupWorkDir(t)

	out, err := execute(t, "init", "--target", "agent")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, ".agent", "skills", "code-review", "SKILL.md"))
	assert.FileExists(t, filepath.Join(dir, ".agent", "agents", "reviewer.md"))
	assert.Contains(t, out, "Generic Agent")
}

func TestInit_SharedResources(t *testing.T) {
	dir := setupWorkDir(t)

	_, err := execute(t, "init", "--target", "cursor")
	require.NoError(t, err)

	// Mirrored copy inside the platform skill dir
	assert.FileExists(t, filepath.Join(dir, ".cursor", "skills", "doc-search", "data", "stopwords.csv"))
	// Centralized copy under the project shared dir
	assert.FileExists(t, filepath.Join(dir, ".shared", "doc-search", "scripts", "search.py"))
}

func TestInit_SelfContainedPlatform(t *testing.T) {
	dir := setupWorkDir(t)

	_, err := execute(t, "init", "--target", "antigravity")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, ".antigravity", "skills", "doc-search", "data", "stopwords.csv"))
	assert.NoDirExists(t, filepath.Join(dir, ".shared"))
}

func TestInit_PreservesCustomizations(t *testing.T) {
	dir := setupWorkDir(t)
	custom := filepath.Join(dir, ".agent", "skills", "code-review", "SKILL.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(custom), 0o755))
	require.NoError(t, os.WriteFile(custom, []byte("custom"), 0o644))

	_, err := execute(t, "init", "--target", "agent")
	require.NoError(t, err)

	data, err := os.ReadFile(custom)
	require.NoError(t, err)
	assert.Equal(t, "custom", string(data))
}

func TestInit_CategoryFilter(t *testing.T) {
	dir := setupWorkDir(t)

	_, err := execute(t, "init", "--target", "agent", "--category", "doc")
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(dir, ".agent", "skills", "doc-search"))
	assert.NoDirExists(t, filepath.Join(dir, ".agent", "skills", "code-review"))
}

func TestInit_AgentsOnlyFlag(t *testing.T) {
	dir := setupWorkDir(t)

	_, err := execute(t, "init", "--target", "agent", "--agents")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, ".agent", "agents", "reviewer.md"))
	assert.NoDirExists(t, filepath.Join(dir, ".agent", "skills"))
}

func TestInit_GlobalInstall(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := setupWorkDir(t)

	_, err := execute(t, "init", "--target", "agent", "--global")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(home, ".agent", "skills", "code-review", "SKILL.md"))
	assert.NoDirExists(t, filepath.Join(dir, ".agent"))
}

func TestInit_GeminiAgentsAreTOML(t *testing.T) {
	dir := setupWorkDir(t)

	out, err := execute(t, "init", "--target", "gemini")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".gemini", "agents", "reviewer.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "name =")
	assert.Contains(t, string(data), "reviewer")
	assert.Contains(t, string(data), "prompt =")
	// Gemini takes no skills, so the summary shows agents only
	assert.NotContains(t, out, "skills,")
}

func TestInit_UnknownTarget(t *testing.T) {
	setupWorkDir(t)

	_, err := execute(t, "init", "--target", "windsurf")
	require.Error(t, err)
}

func TestInit_UpdatesGitExclude(t *testing.T) {
	dir := setupWorkDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	_, err := execute(t, "init", "--target", "agent")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".git", "info", "exclude"))
	require.NoError(t, err)
	assert.Contains(t, string(data), ".shared")
	assert.Contains(t, string(data), ".cursor")
}

func TestInit_NoTemplates(t *testing.T) {
	testChdir(t, t.TempDir())

	_, err := execute(t, "init", "--target", "agent")
	require.Error(t, err)
}
