// Package commands implements aocgen's scaffold operation.
package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"aocgen/internal/browse"
	"aocgen/internal/config"
	"aocgen/internal/core"
	"aocgen/internal/errors"
	"aocgen/internal/exec"
	"aocgen/internal/fs"
	"aocgen/internal/render"
	"aocgen/internal/scaffold"
)

// Next finds the first unscaffolded day under cwd and materializes it: a
// cargo crate, a launch.json, and the input placeholder, followed by an
// instruction plus a browser tab pointing at the day's puzzle input page.
//
// Steps run strictly in order and the first failure aborts with no rollback:
// a partially created day stays on disk, is detected as existing by later
// runs, and needs manual cleanup.
func Next(ctx context.Context, cr exec.CommandRunner, fsys fs.FS, opener browse.URLOpener, cfg config.Config, cwd string, stdout, stderr io.Writer) error {
	day, ok, err := scaffold.NextDay(fsys, cwd, cfg.TotalDays)
	if err != nil {
		return errors.Wrap(errors.EFilesystem, "failed to scan day directories", err)
	}
	if !ok {
		fmt.Fprintln(stderr, render.SeasonComplete(core.DayDirName(cfg.TotalDays)))
		return nil
	}

	dayDir := core.DayDirName(day)
	dayPath := filepath.Join(cwd, dayDir)

	// cargo prints its own diagnostics; pass stderr through unmodified.
	cargoArgs := []string{"new", dayDir, "--edition", cfg.Edition, "--vcs", "none"}
	if err := cr.Run(ctx, "cargo", cargoArgs, exec.RunOpts{Dir: cwd, Stderr: stderr}); err != nil {
		return errors.Wrap(errors.ECargoFailed, "cargo new "+dayDir+" failed", err)
	}

	launchPath := filepath.Join(dayPath, "launch.json")
	if err := fsys.WriteFile(launchPath, []byte(scaffold.LaunchConfig(dayDir)), 0644); err != nil {
		return errors.Wrap(errors.EFilesystem, "failed to write launch.json", err)
	}

	if err := scaffold.CreateInput(fsys, dayPath); err != nil {
		return errors.Wrap(errors.EFilesystem, "failed to create input placeholder", err)
	}

	inputPath := filepath.Join(dayDir, "input", "input.txt")
	fmt.Fprintln(stdout, render.Scaffolded(dayDir))
	fmt.Fprintln(stderr, render.SaveInputInstruction(inputPath, cfg.InputURL(day)))

	// Fire-and-forget; the opener's failure is indistinguishable from
	// success to this tool.
	_ = opener.Open(cfg.InputURL(day))

	return nil
}
