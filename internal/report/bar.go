package report

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	defaultBarWidth     = 30
	terminalWidthBackup = 80
)

// DepletionBar renders a fixed-width bar of the shoe's dealt fraction,
// suffixed with the percentage. A non-positive width falls back to the
// default.
func DepletionBar(dealt, total, width int) string {
	if width <= 0 {
		width = defaultBarWidth
	}
	fraction := 0.0
	if total > 0 {
		fraction = float64(dealt) / float64(total)
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", bar, fraction*100)
}

// BarWidthFor derives a bar width that fits the given total line width,
// accounting for the brackets and percentage suffix.
func BarWidthFor(totalWidth int) int {
	reserved := displayWidth("[] 100%")
	width := totalWidth - reserved
	if width < 1 {
		return defaultBarWidth
	}
	if width > defaultBarWidth {
		width = defaultBarWidth
	}
	return width
}

// TerminalWidth returns the stdout terminal width, or a backup width
// when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
