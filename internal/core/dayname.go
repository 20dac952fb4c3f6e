// Package core provides pure helpers shared across aocgen commands.
package core

import "fmt"

// DayDirName returns the directory name for a day number: "day" followed by
// the number zero-padded to at least two digits (1 -> "day01", 12 -> "day12",
// 100 -> "day100"). Injective, no range validation, no side effects.
func DayDirName(n int) string {
	return fmt.Sprintf("day%02d", n)
}
