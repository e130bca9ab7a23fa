package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual progress bar for a 0-100 score.
// Example: "████████░░ 80/100"
func ScoreBar(score int, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := score * width / 100
	filled = max(0, min(width, filled))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", ScoreStyle(score).Render(bar), StyleMuted.Render(fmt.Sprintf("%d/100", score)))
}

// TrendArrow returns a styled trend indicator for a score delta where higher
// is better. Zero shows a dash.
func TrendArrow(delta float64) string {
	switch {
	case delta > 0:
		return StyleSuccess.Render(fmt.Sprintf("▲ +%.0f", delta))
	case delta < 0:
		return StyleError.Render(fmt.Sprintf("▼ %.0f", delta))
	default:
		return StyleMuted.Render("─")
	}
}

// Section returns a styled section header with a horizontal rule.
func Section(title string, width int) string {
	if width <= 0 {
		width = 66
	}
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", width))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// Bullet returns an indented list line with a styled marker.
func Bullet(marker, text string) string {
	return fmt.Sprintf("  %s %s", marker, text)
}
