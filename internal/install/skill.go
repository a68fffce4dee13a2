package install

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/TriNgo0108/z-command/internal/paths"
	"github.com/TriNgo0108/z-command/internal/platform"
	"github.com/TriNgo0108/z-command/pkg/fileutil"
)

// skillEntry is the file every skill directory is keyed on.
const skillEntry = "SKILL.md"

// sharedSubdirs are the side-resource subtrees of a complex skill that are
// centralized under the platform's shared directory when it defines one.
var sharedSubdirs = []string{"data", "scripts"}

// InstallSkills mirrors every skill from <templatesDir>/skills into
// <targetBase>/<p.SkillsDir>, applying the platform's SKILL.md transform and
// never overwriting files that already exist at the destination. When the
// platform defines a shared directory, each skill's data/ and scripts/
// subtrees are additionally copied under <workDir>/<p.SharedDir>/<skill>/.
//
// category filters skills by case-sensitive substring match on the directory
// name; empty matches everything. The returned count is the number of skill
// directories processed, regardless of how many files were skipped.
//
// A missing skills/ source directory is a warning, not an error: the
// category contributes zero installs and processing continues.
func InstallSkills(logger *slog.Logger, targetBase string, p platform.Config, templatesDir, workDir, category string) (int, error) {
	srcDir := filepath.Join(templatesDir, "skills")
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("no skills directory in template source", "path", srcDir)
			return 0, nil
		}
		return 0, errors.Wrap(err, "reading skills directory")
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if category != "" && !strings.Contains(name, category) {
			continue
		}

		srcSkill := filepath.Join(srcDir, name)
		dstSkill := filepath.Join(targetBase, p.SkillsDir, name)

		if err := mirrorSkill(logger, srcSkill, dstSkill, p.TransformSkill); err != nil {
			return count, errors.Wrapf(err, "installing skill %q", name)
		}
		count++

		if p.SharedDir != "" {
			if err := shareResources(logger, srcSkill, workDir, p.SharedDir, name); err != nil {
				return count, errors.Wrapf(err, "sharing resources for skill %q", name)
			}
		}
	}

	return count, nil
}

// mirrorSkill recursively copies a skill tree, transforming SKILL.md content
// when the platform defines a transform. Files already present at the
// destination are preserved byte-for-byte.
func mirrorSkill(logger *slog.Logger, src, dst string, transform platform.SkillTransform) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return paths.EnsureDir(target, 0)
		}

		if d.Name() == skillEntry && transform != nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "reading %s", path)
			}
			wrote, err := fileutil.WriteFileIfAbsent(target, []byte(transform(string(data))), 0o644)
			if err != nil {
				return err
			}
			if !wrote {
				logger.Debug("skipping existing file", "path", target)
			}
			return nil
		}

		wrote, err := fileutil.CopyFileIfAbsent(path, target)
		if err != nil {
			return err
		}
		if !wrote {
			logger.Debug("skipping existing file", "path", target)
		}
		return nil
	})
}

// shareResources copies a skill's data/ and scripts/ subtrees to
// <workDir>/<sharedDir>/<skill>/{data,scripts}. The copy is skipped entirely
// when the destination tree already exists; these are one-shot installs and
// partial-overlap merging is deliberately out of scope. The shared directory
// always resolves against the project working directory, never the global
// home and never the per-platform target base.
func shareResources(logger *slog.Logger, srcSkill, workDir, sharedDir, skillName string) error {
	for _, sub := range sharedSubdirs {
		src := filepath.Join(srcSkill, sub)
		info, err := os.Stat(src)
		if err != nil || !info.IsDir() {
			continue
		}

		dst := filepath.Join(workDir, sharedDir, skillName, sub)
		copied, err := fileutil.CopyTreeIfAbsent(src, dst)
		if err != nil {
			return err
		}
		if copied {
			logger.Info("shared skill resources", "skill", skillName, "path", dst)
		}
	}
	return nil
}
