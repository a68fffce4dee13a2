package install

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/TriNgo0108/z-command/internal/paths"
	"github.com/TriNgo0108/z-command/internal/platform"
	"github.com/TriNgo0108/z-command/pkg/fileutil"
)

// agentSuffix identifies agent template files in the library.
const agentSuffix = ".agent.md"

// InstallAgents copies every <name>.agent.md from <templatesDir>/agents into
// the platform's agents directory under targetBase, renaming the suffix to
// the platform's extension and applying the platform's content transform.
// Files already present at the destination are skipped silently; only files
// actually written count toward the returned total.
//
// global selects GlobalAgentsDir over AgentsDir for platforms that separate
// the two. category filters agents by case-sensitive substring match on the
// source filename; empty matches everything.
//
// A missing agents/ source directory is a warning, not an error.
func InstallAgents(logger *slog.Logger, targetBase string, p platform.Config, templatesDir string, global bool, category string) (int, error) {
	srcDir := filepath.Join(templatesDir, "agents")
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("no agents directory in template source", "path", srcDir)
			return 0, nil
		}
		return 0, errors.Wrap(err, "reading agents directory")
	}

	dstDir := filepath.Join(targetBase, p.AgentsDirFor(global))

	count := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, agentSuffix) {
			continue
		}
		if category != "" && !strings.Contains(name, category) {
			continue
		}

		targetName := strings.TrimSuffix(name, agentSuffix) + p.AgentExtension
		target := filepath.Join(dstDir, targetName)

		if _, err := os.Lstat(target); err == nil {
			logger.Debug("skipping existing agent", "path", target)
			continue
		}

		data, err := os.ReadFile(filepath.Join(srcDir, name))
		if err != nil {
			return count, errors.Wrapf(err, "reading agent %q", name)
		}

		content := string(data)
		if p.TransformAgent != nil {
			content = p.TransformAgent(content, name)
		}

		if err := paths.EnsureDir(dstDir, 0); err != nil {
			return count, errors.Wrap(err, "creating agents directory")
		}
		wrote, err := fileutil.WriteFileIfAbsent(target, []byte(content), 0o644)
		if err != nil {
			return count, errors.Wrapf(err, "writing agent %q", targetName)
		}
		if wrote {
			count++
		}
	}

	return count, nil
}
