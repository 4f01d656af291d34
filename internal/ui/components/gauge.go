package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anu6598/otp-breach/internal/theme"
)

var gaugeLabelStyle = lipgloss.NewStyle().Foreground(theme.ColorBodyText)

// SemicircleGauge renders a semicircle arc gauge using braille characters.
type SemicircleGauge struct {
	Label   string  // e.g. "Over Threshold"
	Percent float64 // 0.0 ~ N (can exceed 1.0)
	Width   int     // character width of the gauge area
}

// Render returns the gauge as a block of lines.
func (g SemicircleGauge) Render() []string {
	w := g.Width
	if w < 10 {
		w = 10
	}

	arcH := w / 4
	if arcH < 3 {
		arcH = 3
	}
	if arcH > 6 {
		arcH = 6
	}

	canvas := NewBrailleCanvas(w, arcH)
	cx := float64(canvas.PixelWidth()) / 2
	cy := float64(canvas.PixelHeight()) - 1
	outerR := cy
	if cx-0.5 < outerR {
		outerR = cx - 0.5
	}
	innerR := outerR * 0.62

	pct := g.Percent
	if pct > 1 {
		pct = 1 // cap visual fill at 100%
	}
	if pct < 0 {
		pct = 0
	}

	canvas.DrawSemicircle(cx, cy, outerR, innerR, pct)
	arcLines := canvas.RenderGradient(theme.ColorGaugeDim)

	pctText := fmt.Sprintf("%.1f%%", g.Percent*100)
	pctColor := theme.MultiStopGradient(pct, theme.ProgressGradient)
	styledPct := lipgloss.NewStyle().Foreground(lipgloss.Color(pctColor)).Bold(true).Render(pctText)

	var block []string
	block = append(block, CenterText(gaugeLabelStyle.Render(g.Label), w))
	block = append(block, "")
	block = append(block, arcLines...)
	block = append(block, CenterText(styledPct, w))
	return block
}

// RenderGaugeRow renders multiple gauges side by side.
func RenderGaugeRow(gauges []SemicircleGauge, gap int) string {
	var blocks [][]string
	for _, g := range gauges {
		blocks = append(blocks, g.Render())
	}
	return strings.Join(JoinHorizontal(blocks, gap), "\n")
}
