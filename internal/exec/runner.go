// Package exec provides a stub-friendly interface for running external commands.
package exec

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	Dir    string    // working directory (optional)
	Stdout io.Writer // command stdout (optional)
	// Stderr receives the command's stderr unmodified; wire it to the
	// user's terminal so the tool's own diagnostics surface. Optional.
	Stderr io.Writer
}

// CommandRunner is the interface for running external commands.
// Implementations must be safe for stubbing in tests.
type CommandRunner interface {
	// Run executes a command and waits for it to exit. A non-zero exit
	// status is reported as an error; the command's output goes to the
	// writers in opts, not into the error.
	Run(ctx context.Context, name string, args []string, opts RunOpts) error
}

// RealRunner is the production implementation of CommandRunner using os/exec.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes the command with its output streamed to the opts writers.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%s exited with status %d", name, exitErr.ExitCode())
		}
		// binary not found, ctx canceled, etc.
		return err
	}
	return nil
}
