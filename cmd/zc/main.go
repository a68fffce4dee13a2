// Package main is the entry point for the zc CLI.
package main

import (
	"fmt"
	"os"

	"github.com/TriNgo0108/z-command/cmd/zc/commands"
	zcerrors "github.com/TriNgo0108/z-command/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *zcerrors.ExitError
		if zcerrors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(zcerrors.ExitUser)
	}
}
