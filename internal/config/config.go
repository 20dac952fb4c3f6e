// Package config holds the immutable season configuration for aocgen.
package config

import "fmt"

// Config holds the season constants. A Config is fixed at startup and never
// mutated; tests construct their own values to vary the season length.
type Config struct {
	Year      int    // season identifier, used only for URL construction
	TotalDays int    // number of days in the season
	Edition   string // cargo edition for generated crates
	BaseURL   string // puzzle site root, no trailing slash
}

// Default returns the compiled-in season configuration.
func Default() Config {
	return Config{
		Year:      2024,
		TotalDays: 25,
		Edition:   "2021",
		BaseURL:   "https://adventofcode.com",
	}
}

// InputURL returns the page where the personalized input for day can be
// downloaded after authenticating in the browser.
func (c Config) InputURL(day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", c.BaseURL, c.Year, day)
}
