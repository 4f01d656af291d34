package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/anu6598/otp-breach/internal/theme"
)

var (
	rowEvenStyle = lipgloss.NewStyle()
	rowOddStyle  = lipgloss.NewStyle().Background(theme.ColorElevatedBg)
	cursorStyle  = lipgloss.NewStyle().Foreground(theme.ColorAmber)
	cursorActive = cursorStyle.Render("▶ ")
	cursorBlank  = "  "
)

// RowBackground returns a subtle background style for alternating rows.
// Even rows (0, 2, 4...) get no background, odd rows get ElevatedBg.
func RowBackground(index int) lipgloss.Style {
	if index%2 == 1 {
		return rowOddStyle
	}
	return rowEvenStyle
}

// CursorIndicator returns "▶ " when selected, blank padding otherwise.
func CursorIndicator(selected bool) string {
	if selected {
		return cursorActive
	}
	return cursorBlank
}
