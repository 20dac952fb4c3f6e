// Package render formats the user-facing messages for aocgen.
package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	pathStyle = lipgloss.NewStyle().Bold(true)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Underline(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

// Scaffolded reports the freshly created day directory.
func Scaffolded(dayDir string) string {
	return fmt.Sprintf("Created %s", pathStyle.Render(dayDir))
}

// SaveInputInstruction tells the user where to put the puzzle input. The
// tool cannot download it itself: the input is account-specific and needs
// the authenticated browser session.
func SaveInputInstruction(inputPath, url string) string {
	return fmt.Sprintf("Save your puzzle input from %s to %s",
		urlStyle.Render(url), pathStyle.Render(inputPath))
}

// SeasonComplete reports that every day up to lastDir already exists.
func SeasonComplete(lastDir string) string {
	return doneStyle.Render(fmt.Sprintf(
		"You have already created the last day (%s). Nothing left to scaffold.", lastDir))
}
