// Package git provides repository detection and best-effort ignore hygiene.
package git

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/TriNgo0108/z-command/pkg/fileutil"
)

// IsRepo reports whether dir contains a .git directory.
func IsRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}

// EnsureExcludes makes sure every entry appears in <dir>/.git/info/exclude,
// appending only the missing ones. The info/ directory and the exclude file
// are created when absent. Existing lines, including user additions, are
// preserved as-is.
//
// Callers treat failures here as cosmetic: .git/info/exclude is local-only
// ignore hygiene, never a dependency of installation correctness.
func EnsureExcludes(dir string, entries []string) error {
	infoDir := filepath.Join(dir, ".git", "info")
	excludePath := filepath.Join(infoDir, "exclude")

	existing, err := os.ReadFile(excludePath)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "reading git exclude file")
	}

	present := map[string]bool{}
	for _, line := range strings.Split(string(existing), "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var missing []string
	for _, entry := range entries {
		if !present[entry] {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	if err := os.MkdirAll(infoDir, 0o755); err != nil {
		return errors.Wrap(err, "creating git info directory")
	}

	content := string(existing)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += strings.Join(missing, "\n") + "\n"

	if err := fileutil.AtomicWriteFile(excludePath, []byte(content), 0o644); err != nil {
		return errors.Wrap(err, "writing git exclude file")
	}
	return nil
}
