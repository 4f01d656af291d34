package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anu6598/otp-breach/internal/theme"
)

// SlicePalette returns the 5-color palette for pie chart slices.
func SlicePalette() []string {
	return []string{
		string(theme.ColorSkyBlue), // C1
		string(theme.ColorTeal),    // C2
		string(theme.ColorViolet),  // C3
		string(theme.ColorAmber),   // C4
		string(theme.ColorCoral),   // C5
	}
}

// VisualWidth returns the visible character count, ignoring ANSI escape codes.
func VisualWidth(s string) int {
	n := 0
	esc := false
	for _, r := range s {
		if r == '\033' {
			esc = true
			continue
		}
		if esc {
			if r == 'm' {
				esc = false
			}
			continue
		}
		n++
	}
	return n
}

// PadRight pads a string to the given visual width.
func PadRight(s string, width int) string {
	gap := width - VisualWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// PadLeft pads a string on the left to the given visual width.
func PadLeft(s string, width int) string {
	gap := width - VisualWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}

// CenterText centers a string within the given visual width.
func CenterText(s string, width int) string {
	gap := width - VisualWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// CenterBlock centers a multi-line block within the given width.
// Unlike CenterText (per-line), this shifts the entire block uniformly
// so internal column alignment is preserved.
func CenterBlock(content string, width int) string {
	lines := strings.Split(content, "\n")
	maxW := 0
	for _, line := range lines {
		if vw := VisualWidth(line); vw > maxW {
			maxW = vw
		}
	}
	pad := (width - maxW) / 2
	if pad <= 0 {
		return content
	}
	prefix := strings.Repeat(" ", pad)
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// JoinHorizontal joins multiple blocks of lines side by side with a gap.
func JoinHorizontal(blocks [][]string, gap int) []string {
	maxH := 0
	for _, b := range blocks {
		if len(b) > maxH {
			maxH = len(b)
		}
	}
	widths := make([]int, len(blocks))
	for i, b := range blocks {
		for _, line := range b {
			if vl := VisualWidth(line); vl > widths[i] {
				widths[i] = vl
			}
		}
	}
	spacer := strings.Repeat(" ", gap)
	var result []string
	for row := 0; row < maxH; row++ {
		var sb strings.Builder
		for i, b := range blocks {
			if i > 0 {
				sb.WriteString(spacer)
			}
			if row < len(b) {
				sb.WriteString(PadRight(b[row], widths[i]))
			} else {
				sb.WriteString(strings.Repeat(" ", widths[i]))
			}
		}
		result = append(result, sb.String())
	}
	return result
}

// ColoredSquare returns a colored legend marker.
func ColoredSquare(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}
