package commands

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/TriNgo0108/z-command/internal/errors"
)

// installPath is the module path `go install` uses for self-updates.
const installPath = "github.com/TriNgo0108/z-command/cmd/zc@latest"

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update zc to the latest released version",
	Long: `Reinstall zc from its module path using the Go toolchain.

Equivalent to running: go install ` + installPath,
	RunE: runUpdate,
}

func runUpdate(c *cobra.Command, _ []string) error {
	fmt.Fprintln(c.OutOrStdout(), "Updating zc...")

	// Output is streamed so toolchain progress and errors stay visible.
	update := exec.Command("go", "install", installPath)
	update.Stdout = os.Stdout
	update.Stderr = os.Stderr

	if err := update.Run(); err != nil {
		return errors.NewSystemError(
			errors.Wrap(err, "go install failed"),
			"Make sure the Go toolchain is installed and GOPATH/bin is writable")
	}

	fmt.Fprintln(c.OutOrStdout(), "zc updated. New version takes effect on next invocation.")
	return nil
}
