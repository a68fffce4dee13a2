package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TriNgo0108/z-command/internal/errors"
	"github.com/TriNgo0108/z-command/internal/templates"
	"github.com/TriNgo0108/z-command/pkg/fileutil"
	"github.com/TriNgo0108/z-command/pkg/frontmatter"
)

var listCategory string

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "",
		"only list skills/agents whose name contains this substring")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skills and agents in the template library",
	Long: `Enumerate the template library without installing anything.

Each entry shows the template name and the description from its
frontmatter, when present.`,
	Example: `  # Show the whole library
  zc list

  # Show only templates matching a substring
  zc list --category review`,
	RunE: runList,
}

func runList(c *cobra.Command, _ []string) error {
	source, err := templates.DefaultSource()
	if err != nil {
		return errors.NewSystemError(err, "Reinstall zc")
	}
	templatesDir, err := source.Resolve()
	if err != nil {
		if errors.Is(err, errors.ErrTemplatesNotFound) {
			return errors.NewUserError(err,
				"Reinstall zc, or run from a checkout containing a templates/ directory")
		}
		return err
	}

	w := c.OutOrStdout()
	heading := color.New(color.Bold, color.FgCyan).FprintlnFunc()

	heading(w, "Skills")
	if err := listSkills(c, templatesDir); err != nil {
		return err
	}

	fmt.Fprintln(w)
	heading(w, "Agents")
	return listAgents(c, templatesDir)
}

// templateMeta is the frontmatter subset shown in listings.
type templateMeta struct {
	Description string `yaml:"description"`
}

func listSkills(c *cobra.Command, templatesDir string) error {
	w := c.OutOrStdout()
	entries, err := os.ReadDir(filepath.Join(templatesDir, "skills"))
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(w, "  (none)")
			return nil
		}
		return errors.Wrap(err, "reading skills directory")
	}

	shown := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if listCategory != "" && !strings.Contains(name, listCategory) {
			continue
		}
		desc := describe(filepath.Join(templatesDir, "skills", name, "SKILL.md"))
		fmt.Fprintf(w, "  %-24s %s\n", name, truncate(desc, 72))
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	return nil
}

func listAgents(c *cobra.Command, templatesDir string) error {
	w := c.OutOrStdout()
	entries, err := os.ReadDir(filepath.Join(templatesDir, "agents"))
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(w, "  (none)")
			return nil
		}
		return errors.Wrap(err, "reading agents directory")
	}

	shown := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".agent.md") {
			continue
		}
		if listCategory != "" && !strings.Contains(name, listCategory) {
			continue
		}
		desc := describe(filepath.Join(templatesDir, "agents", name))
		fmt.Fprintf(w, "  %-24s %s\n", strings.TrimSuffix(name, ".agent.md"), truncate(desc, 72))
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	return nil
}

// describe reads a template's frontmatter description; unreadable or
// description-less templates list with an empty description.
func describe(path string) string {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return ""
	}
	var meta templateMeta
	if err := frontmatter.ParseHeader(bytes.NewReader(data), &meta); err != nil {
		return ""
	}
	return meta.Description
}
