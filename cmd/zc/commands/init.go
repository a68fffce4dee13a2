package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/TriNgo0108/z-command/internal/errors"
	"github.com/TriNgo0108/z-command/internal/install"
	"github.com/TriNgo0108/z-command/internal/logging"
	"github.com/TriNgo0108/z-command/internal/paths"
	"github.com/TriNgo0108/z-command/internal/platform"
	"github.com/TriNgo0108/z-command/internal/templates"
)

var (
	initTarget      string
	initGlobal      bool
	initSkills      bool
	initAgents      bool
	initCategory    string
	initInteractive bool
)

func init() {
	initCmd.Flags().StringVarP(&initTarget, "target", "t", "",
		"platform(s) to install for: an id, a comma-separated list, or \"all\"")
	initCmd.Flags().BoolVarP(&initGlobal, "global", "g", false,
		"install into the home directory instead of the current project")
	initCmd.Flags().BoolVar(&initSkills, "skills", false,
		"install skills only (default: both skills and agents)")
	initCmd.Flags().BoolVar(&initAgents, "agents", false,
		"install agents only (default: both skills and agents)")
	initCmd.Flags().StringVarP(&initCategory, "category", "c", "",
		"only install skills/agents whose name contains this substring")
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false,
		"pick target platforms interactively")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install skill and agent templates for your platforms",
	Long: `Install the template library into each selected platform's directory
conventions.

Without --target, the default platform set from your configuration is
used. Files that already exist at a target path are never overwritten,
so init is safe to re-run after you have customized installed templates.

Platforms that centralize shared skill resources get each skill's data/
and scripts/ subtrees copied under the project's shared directory;
platforms requiring self-contained skills keep everything inside the
skill directory.`,
	Example: `  # Install everything for the default platforms
  zc init

  # Install only skills, for Cursor
  zc init --target cursor --skills

  # Install globally for GitHub Copilot
  zc init --target copilot --global

  # Install only templates matching a name substring
  zc init --category review

  # Pick platforms interactively
  zc init --interactive`,
	RunE: runInit,
}

func runInit(c *cobra.Command, _ []string) error {
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	platforms, err := selectPlatforms()
	if err != nil {
		return err
	}

	// A configured shared_dir overrides the table value for platforms that
	// centralize shared resources; self-contained platforms stay untouched.
	if loadedConfig != nil && loadedConfig.SharedDir != "" {
		for i := range platforms {
			if platforms[i].SharedDir != "" {
				platforms[i].SharedDir = loadedConfig.SharedDir
			}
		}
	}

	home, err := paths.ResolveHome()
	if err != nil {
		return errors.NewSystemError(err, "Set the HOME environment variable")
	}
	workDir, err := paths.ResolveWorkDir()
	if err != nil {
		return errors.NewSystemError(err, "Run zc from a readable directory")
	}
	source, err := templates.DefaultSource()
	if err != nil {
		return errors.NewSystemError(err, "Reinstall zc")
	}

	results, err := install.Run(install.Options{
		Platforms: platforms,
		Global:    initGlobal,
		Skills:    initSkills,
		Agents:    initAgents,
		Category:  initCategory,
		Home:      home,
		WorkDir:   workDir,
		Source:    source,
		Logger:    logging.FromContext(c.Context()),
	})
	if err != nil {
		if errors.Is(err, errors.ErrTemplatesNotFound) {
			return errors.NewUserError(err,
				"Reinstall zc, or run from a checkout containing a templates/ directory")
		}
		return err
	}

	printSummary(c, results)
	return nil
}

// selectPlatforms resolves the platform set from the --interactive picker or
// the --target flag, falling back to the configured defaults.
func selectPlatforms() ([]platform.Config, error) {
	if !initInteractive {
		var defaults []string
		if loadedConfig != nil {
			defaults = loadedConfig.DefaultPlatforms
		}
		platforms, err := platform.Resolve(initTarget, defaults)
		if err != nil {
			return nil, errors.NewUserError(err, "Run 'zc init --target all' or pick from the listed platforms")
		}
		return platforms, nil
	}

	all := platform.All()
	idxs, err := fuzzyfinder.FindMulti(
		all,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", all[i].DisplayName, all[i].ID)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			p := all[i]
			skills := "skills: " + p.SkillsDir
			if !p.SupportsSkills() {
				skills = "skills: not supported"
			}
			return fmt.Sprintf("%s\n\nproject dir: %s\nglobal dir:  %s\n%s\nagents:  %s (%s)",
				p.DisplayName, p.ProjectDir, p.GlobalDir, skills, p.AgentsDir, p.AgentExtension)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, errors.NewUserError(errors.New("no platforms selected"), "Select at least one platform, or pass --target")
		}
		return nil, errors.Wrap(err, "selecting platforms")
	}

	selected := make([]platform.Config, len(idxs))
	for i, idx := range idxs {
		selected[i] = all[idx]
	}
	return selected, nil
}

// printSummary writes the per-platform counts and locations.
func printSummary(c *cobra.Command, results []install.Result) {
	w := c.OutOrStdout()
	check := color.New(color.FgGreen).Sprint("✓")
	name := color.New(color.Bold).SprintFunc()
	dim := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintln(w)
	for _, res := range results {
		line := fmt.Sprintf("%s %s:", check, name(res.Platform.DisplayName))
		if res.Platform.SupportsSkills() {
			line += fmt.Sprintf(" %d skills,", res.SkillsCount)
		}
		line += fmt.Sprintf(" %d agents %s", res.AgentsCount, dim(res.Location))
		fmt.Fprintln(w, line)
	}
}
