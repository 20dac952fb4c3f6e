// Command aocgen scaffolds the next Advent of Code day in the current directory.
package main

import (
	"os"

	"aocgen/internal/cli"
	"aocgen/internal/errors"
)

func main() {
	err := cli.Run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
