// Package output provides styled terminal rendering helpers for hiresignal.
package output

import "github.com/charmbracelet/lipgloss"

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for strengths and improvements.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for red flags and regressions.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for middling scores.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	StyleHeader  lipgloss.Style
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleBold    lipgloss.Style

	// StyleLabel pads metric labels to a fixed column.
	StyleLabel lipgloss.Style
)

// noColor tracks whether color output is disabled.
var noColor bool

func init() {
	applyStyles(true)
}

// SetNoColor disables or enables color output globally.
func SetNoColor(disabled bool) {
	noColor = disabled
	applyStyles(!disabled)
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

func applyStyles(color bool) {
	plain := lipgloss.NewStyle()
	StyleLabel = plain.Width(26)

	if !color {
		StyleHeader = plain
		StyleSuccess = plain
		StyleError = plain
		StyleWarning = plain
		StyleMuted = plain
		StyleBold = plain
		return
	}

	StyleHeader = plain.Foreground(ColorPrimary).Bold(true)
	StyleSuccess = plain.Foreground(ColorSuccess)
	StyleError = plain.Foreground(ColorError)
	StyleWarning = plain.Foreground(ColorWarning)
	StyleMuted = plain.Foreground(ColorMuted)
	StyleBold = plain.Bold(true)
}

// ScoreStyle picks the style for a 0-100 score.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 70:
		return StyleSuccess
	case score >= 40:
		return StyleWarning
	default:
		return StyleError
	}
}

// SeverityStyle picks the style for a signal or impact level.
func SeverityStyle(level string) lipgloss.Style {
	switch level {
	case "high":
		return StyleError
	case "medium":
		return StyleWarning
	default:
		return StyleMuted
	}
}
