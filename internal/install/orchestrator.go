// Package install places skill and agent templates into each platform's
// directory conventions. Installs are additive and idempotent: a file that
// already exists at a target path is never overwritten, so user
// customizations survive repeated runs.
package install

import (
	"log/slog"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/TriNgo0108/z-command/internal/git"
	"github.com/TriNgo0108/z-command/internal/platform"
	"github.com/TriNgo0108/z-command/internal/templates"
)

// ExcludeEntries are the directory names appended to .git/info/exclude after
// a project-local install, covering every platform's output locations.
var ExcludeEntries = []string{
	".shared",
	".skills",
	".agents",
	".agent",
	".claude",
	".cursor",
	"agents",
	"skills",
}

// Options carries one orchestration run's inputs. Home and WorkDir are
// resolved once by the caller and passed explicitly so the core never reads
// process globals.
type Options struct {
	// Platforms is the resolved platform set, in install order.
	Platforms []platform.Config

	// Global installs under the home directory instead of the project.
	Global bool

	// Skills and Agents select categories. When neither is set, both
	// categories install.
	Skills bool
	Agents bool

	// Category filters skills and agents by case-sensitive substring.
	Category string

	// Home is the user's home directory.
	Home string

	// WorkDir is the project working directory.
	WorkDir string

	// Source locates the template library.
	Source templates.Source

	// Logger receives warnings and progress diagnostics. Defaults to
	// slog.Default when nil.
	Logger *slog.Logger
}

// Result is the per-platform outcome of a run: counts and the resolved
// target base path. Constructed once, displayed, and discarded.
type Result struct {
	Platform    platform.Config
	SkillsCount int
	AgentsCount int
	Location    string
}

// Run resolves the template source once, then processes each selected
// platform strictly sequentially: compute the target base (home-relative
// for global installs, project-relative otherwise), install the requested
// categories, and collect a Result. After all platforms are processed it
// updates .git/info/exclude on a best-effort basis when the working
// directory is a git repository.
//
// A missing template library fails the whole run with ErrTemplatesNotFound;
// per-category source gaps degrade to warnings with zero counts.
func Run(opts Options) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	templatesDir, err := opts.Source.Resolve()
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved template source", "path", templatesDir)

	skills, agents := opts.Skills, opts.Agents
	if !skills && !agents {
		skills, agents = true, true
	}

	results := make([]Result, 0, len(opts.Platforms))
	for _, p := range opts.Platforms {
		targetBase := filepath.Join(opts.WorkDir, p.ProjectDir)
		if opts.Global {
			targetBase = filepath.Join(opts.Home, p.GlobalDir)
		}

		res := Result{Platform: p, Location: targetBase}

		if skills && p.SupportsSkills() {
			n, err := InstallSkills(logger, targetBase, p, templatesDir, opts.WorkDir, opts.Category)
			if err != nil {
				return results, errors.Wrapf(err, "installing skills for %s", p.ID)
			}
			res.SkillsCount = n
		}

		if agents {
			n, err := InstallAgents(logger, targetBase, p, templatesDir, opts.Global, opts.Category)
			if err != nil {
				return results, errors.Wrapf(err, "installing agents for %s", p.ID)
			}
			res.AgentsCount = n
		}

		results = append(results, res)
	}

	// Ignore hygiene is cosmetic convenience; failures are logged and
	// swallowed, never surfaced to the caller.
	if git.IsRepo(opts.WorkDir) {
		if err := git.EnsureExcludes(opts.WorkDir, ExcludeEntries); err != nil {
			logger.Debug("updating git exclude file", "error", err)
		}
	}

	return results, nil
}
