package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.md")
	dst := filepath.Join(dir, "dst.md")
	writeFile(t, src, "hello")

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}
	if got := readFile(t, dst); got != "hello" {
		t.Errorf("destination content = %q", got)
	}
}

func TestCopyFileIfAbsent_PreservesExisting(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.md")
	dst := filepath.Join(dir, "dst.md")
	writeFile(t, src, "template")
	writeFile(t, dst, "custom")

	wrote, err := CopyFileIfAbsent(src, dst)
	if err != nil {
		t.Fatalf("CopyFileIfAbsent() error = %v", err)
	}
	if wrote {
		t.Error("should not report a write when destination exists")
	}
	if got := readFile(t, dst); got != "custom" {
		t.Errorf("existing file was clobbered: %q", got)
	}
}

func TestCopyFileIfAbsent_WritesWhenMissing(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.md")
	dst := filepath.Join(dir, "dst.md")
	writeFile(t, src, "template")

	wrote, err := CopyFileIfAbsent(src, dst)
	if err != nil {
		t.Fatalf("CopyFileIfAbsent() error = %v", err)
	}
	if !wrote {
		t.Error("expected a write")
	}
	if got := readFile(t, dst); got != "template" {
		t.Errorf("destination content = %q", got)
	}
}

func TestWriteFileIfAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")

	wrote, err := WriteFileIfAbsent(path, []byte("first"), 0o644)
	if err != nil {
		t.Fatalf("WriteFileIfAbsent() error = %v", err)
	}
	if !wrote {
		t.Error("expected a write on missing file")
	}

	wrote, err = WriteFileIfAbsent(path, []byte("second"), 0o644)
	if err != nil {
		t.Fatalf("WriteFileIfAbsent() second call error = %v", err)
	}
	if wrote {
		t.Error("should not overwrite an existing file")
	}
	if got := readFile(t, path); got != "first" {
		t.Errorf("content = %q, want first write preserved", got)
	}
}

func TestCopyTree(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, filepath.Join(src, "SKILL.md"), "skill")
	writeFile(t, filepath.Join(src, "data", "rows.csv"), "a,b")
	writeFile(t, filepath.Join(src, "scripts", "run.py"), "print()")

	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree() error = %v", err)
	}

	for _, rel := range []string{"SKILL.md", "data/rows.csv", "scripts/run.py"} {
		if _, err := os.Stat(filepath.Join(dst, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
}

func TestCopyTree_PreservesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, filepath.Join(src, "SKILL.md"), "template")
	writeFile(t, filepath.Join(dst, "SKILL.md"), "custom")

	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree() error = %v", err)
	}
	if got := readFile(t, filepath.Join(dst, "SKILL.md")); got != "custom" {
		t.Errorf("existing file was clobbered: %q", got)
	}
}

func TestCopyTreeIfAbsent(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, filepath.Join(src, "data.csv"), "a,b")

	copied, err := CopyTreeIfAbsent(src, dst)
	if err != nil {
		t.Fatalf("CopyTreeIfAbsent() error = %v", err)
	}
	if !copied {
		t.Error("expected a copy on missing destination")
	}

	copied, err = CopyTreeIfAbsent(src, dst)
	if err != nil {
		t.Fatalf("CopyTreeIfAbsent() second call error = %v", err)
	}
	if copied {
		t.Error("should skip when destination already exists")
	}
}
