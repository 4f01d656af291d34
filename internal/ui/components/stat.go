package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anu6598/otp-breach/internal/theme"
)

var (
	statValueStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true)
	statLabelStyle = lipgloss.NewStyle().Foreground(theme.ColorMutedText)
)

// StatCard renders a stat panel: big number on top, small label below.
type StatCard struct {
	Value string         // e.g. "1,234"
	Sub   string         // optional secondary text e.g. "(of 105 users)"
	Label string         // e.g. "Total Users"
	Width int            // character width
	Color lipgloss.Color // color for the value text (optional)
}

// Render returns the stat card as a block of lines.
func (s StatCard) Render() []string {
	w := s.Width
	if w < 8 {
		w = 8
	}

	styledVal := statValueStyle.Render(s.Value)
	if s.Color != "" {
		styledVal = lipgloss.NewStyle().Foreground(s.Color).Bold(true).Render(s.Value)
	}

	lines := []string{CenterText(styledVal, w)}
	if s.Sub != "" {
		lines = append(lines, CenterText(statLabelStyle.Render(s.Sub), w))
	}
	lines = append(lines, CenterText(statLabelStyle.Render(s.Label), w))
	return lines
}

// RenderStatRow renders multiple stat cards side by side.
func RenderStatRow(cards []StatCard, gap int) string {
	var blocks [][]string
	for _, c := range cards {
		blocks = append(blocks, c.Render())
	}
	return strings.Join(JoinHorizontal(blocks, gap), "\n")
}
