// Package cli wires the aocgen root command to its real collaborators.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"aocgen/internal/browse"
	"aocgen/internal/commands"
	"aocgen/internal/config"
	"aocgen/internal/errors"
	"aocgen/internal/exec"
	"aocgen/internal/fs"
)

const usageText = `aocgen - scaffold the next Advent of Code day

usage: aocgen

finds the first dayNN/ directory (NN = 01..25) missing from the current
directory and creates it: a cargo crate, a debugger launch.json, and an
empty input/input.txt placeholder. the matching puzzle input page is opened
in the browser so the input can be saved there manually.

aocgen takes no arguments; any argument shows this help.
`

// Run builds the root command and executes it against the real command
// runner, filesystem, and browser opener. Returns an error only when a
// scaffolding step fails; usage requests and an exhausted season return nil.
func Run(args []string, stdout, stderr io.Writer) error {
	root := NewRootCmd(stdout, stderr)
	root.SetArgs(args)
	return root.Execute()
}

// NewRootCmd returns the aocgen root command. Flag parsing is disabled so
// that every argument, flag-shaped or not, routes to the usage text and a
// zero exit without side effects.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:                "aocgen",
		Short:              "scaffold the next Advent of Code day",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				fmt.Fprint(stdout, usageText)
				return nil
			}

			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(errors.EInternal, "failed to get working directory", err)
			}

			cr := exec.NewRealRunner()
			fsys := fs.NewRealFS()
			opener := browse.NewBrowserOpener()
			ctx := context.Background()

			return commands.Next(ctx, cr, fsys, opener, config.Default(), cwd, stdout, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root
}
