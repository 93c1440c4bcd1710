package output

import (
	"fmt"
	"strings"
)

// StreakBar renders a streak relative to a best streak as a bar.
// Example: "████████░░ 8/10"
func StreakBar(streak, best, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if best > 0 {
		filled = streak * width / best
	}
	filled = min(max(filled, 0), width)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case streak == 0:
		style = func(s string) string { return StyleError.Render(s) }
	case best > 0 && streak*2 >= best:
		style = func(s string) string { return StyleSuccess.Render(s) }
	default:
		style = func(s string) string { return StyleWarning.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%d/%d", streak, best)))
}

// TrendArrow returns a styled trend indicator for a streak delta.
// Positive delta shows an up arrow, negative shows down, zero shows a dash.
func TrendArrow(delta int) string {
	switch {
	case delta > 0:
		return StyleSuccess.Render(fmt.Sprintf("▲ +%d", delta))
	case delta < 0:
		return StyleError.Render(fmt.Sprintf("▼ %d", delta))
	default:
		return StyleMuted.Render("─")
	}
}

// StreakValue renders a current streak, highlighting lapsed habits.
func StreakValue(streak int) string {
	if streak == 0 {
		return StyleError.Render("0 (lapsed)")
	}
	return StyleSuccess.Render(fmt.Sprintf("%d", streak))
}

// Section returns a styled section header followed by a horizontal rule of
// the given width.
func Section(title string, width int) string {
	if width <= 0 {
		width = 66
	}
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", width))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
