package scaffold

import (
	"os"
	"path/filepath"

	"aocgen/internal/core"
	"aocgen/internal/fs"
)

// NextDay returns the lowest day number in [1, totalDays] with no filesystem
// entry named after it under dir. The boolean is false when every day
// already exists. Lower numbers always win, so gaps left by out-of-order
// creation are filled first.
func NextDay(fsys fs.FS, dir string, totalDays int) (int, bool, error) {
	for day := 1; day <= totalDays; day++ {
		_, err := fsys.Stat(filepath.Join(dir, core.DayDirName(day)))
		if err == nil {
			// any entry counts, file or directory
			continue
		}
		if os.IsNotExist(err) {
			return day, true, nil
		}
		return 0, false, err
	}
	return 0, false, nil
}

// CreateInput creates the input/ subdirectory and its empty input.txt
// placeholder under dayPath. input.txt is never truncated if it somehow
// already exists.
func CreateInput(fsys fs.FS, dayPath string) error {
	inputDir := filepath.Join(dayPath, "input")
	if err := fsys.MkdirAll(inputDir, 0755); err != nil {
		return err
	}
	return fsys.Touch(filepath.Join(inputDir, "input.txt"), 0644)
}
