package components

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anu6598/otp-breach/internal/theme"
)

// PieSlice is one slice of the donut chart.
type PieSlice struct {
	Label      string
	Count      int     // absolute user count
	Percentage float64 // 0-100
}

// PieChart renders a braille donut chart with a legend.
type PieChart struct {
	Slices    []PieSlice
	ChartSize int // character width of the circle area
	Width     int // total available width (chart + legend)
}

// Render returns the chart with legend as a block of lines.
func (p PieChart) Render() string {
	if len(p.Slices) == 0 {
		return theme.MutedStyle.Render("  No data")
	}

	chartSize := p.ChartSize
	if chartSize < 8 {
		chartSize = 8
	}

	palette := SlicePalette()
	slices := p.prepareSlices(len(palette))

	chartH := chartSize / 2
	if chartH < 4 {
		chartH = 4
	}
	canvas := NewBrailleCanvas(chartSize, chartH)
	cx := float64(canvas.PixelWidth()) / 2
	cy := float64(canvas.PixelHeight()) / 2
	outerR := math.Min(cx, cy) - 0.5
	innerR := outerR * 0.45

	// Legend shows real percentages; drawing uses boosted ones so that
	// tiny slices still occupy visible arc on the braille grid.
	drawPcts := enforceMinArc(slices, outerR)

	startAngle := 0.0
	for i := range slices {
		sliceAngle := drawPcts[i] / 100.0 * 2 * math.Pi
		if sliceAngle < 0.001 {
			continue
		}
		endAngle := math.Min(startAngle+sliceAngle, 2*math.Pi)
		colorIdx := i
		if colorIdx >= len(palette) {
			colorIdx = len(palette) - 1
		}
		canvas.DrawRing(cx, cy, outerR, innerR, startAngle, endAngle, colorIdx)
		startAngle = endAngle
	}

	chartLines := canvas.Render(palette, theme.ColorPieChartBg)
	legendLines := p.buildLegend(slices, palette)

	combined := JoinHorizontal([][]string{chartLines, legendLines}, 3)
	return strings.Join(combined, "\n")
}

// prepareSlices sorts by share descending and folds excess slices into
// "Others" so each remaining slice gets its own palette color.
func (p PieChart) prepareSlices(maxColors int) []PieSlice {
	var filtered []PieSlice
	for _, s := range p.Slices {
		if math.Round(s.Percentage*100)/100 > 0 {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Percentage != filtered[j].Percentage {
			return filtered[i].Percentage > filtered[j].Percentage
		}
		return filtered[i].Label < filtered[j].Label
	})

	if len(filtered) <= maxColors {
		return filtered
	}

	result := make([]PieSlice, 0, maxColors)
	result = append(result, filtered[:maxColors-1]...)

	others := PieSlice{Label: "Others"}
	for _, s := range filtered[maxColors-1:] {
		others.Count += s.Count
		others.Percentage += s.Percentage
	}
	return append(result, others)
}

// enforceMinArc returns adjusted percentages for drawing. Slices smaller
// than 4 braille pixels of arc are bumped up, borrowing from the largest
// slice. The slice data itself is not modified.
func enforceMinArc(slices []PieSlice, outerR float64) []float64 {
	pcts := make([]float64, len(slices))
	for i, s := range slices {
		pcts[i] = s.Percentage
	}
	if len(pcts) <= 1 {
		return pcts
	}

	minArc := 4.0 / outerR
	minPct := minArc / (2 * math.Pi) * 100.0

	var deficit float64
	largestIdx := 0
	for i, pct := range pcts {
		if pct > pcts[largestIdx] {
			largestIdx = i
		}
		if pct > 0 && pct < minPct {
			deficit += minPct - pct
			pcts[i] = minPct
		}
	}
	if deficit > 0 {
		pcts[largestIdx] -= deficit
	}
	return pcts
}

func (p PieChart) buildLegend(slices []PieSlice, palette []string) []string {
	if len(slices) == 0 {
		return nil
	}

	type legendEntry struct {
		colorHex string
		label    string
		pctStr   string
		cntStr   string
	}

	maxLabel, maxPct, maxCnt := 0, 0, 0
	entries := make([]legendEntry, len(slices))
	for i, s := range slices {
		colorIdx := i
		if colorIdx >= len(palette) {
			colorIdx = len(palette) - 1
		}
		entries[i] = legendEntry{
			colorHex: palette[colorIdx],
			label:    s.Label,
			pctStr:   fmt.Sprintf("%.1f%%", s.Percentage),
			cntStr:   FormatNumber(s.Count),
		}
		if len(s.Label) > maxLabel {
			maxLabel = len(s.Label)
		}
		if len(entries[i].pctStr) > maxPct {
			maxPct = len(entries[i].pctStr)
		}
		if len(entries[i].cntStr) > maxCnt {
			maxCnt = len(entries[i].cntStr)
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText)

	var lines []string
	for _, e := range entries {
		square := ColoredSquare(e.colorHex)
		label := labelStyle.Render(fmt.Sprintf("%-*s", maxLabel, e.label))
		valStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(e.colorHex))
		pct := valStyle.Render(fmt.Sprintf("%*s", maxPct, e.pctStr))
		cnt := valStyle.Render(fmt.Sprintf("%*s", maxCnt, e.cntStr))
		lines = append(lines, fmt.Sprintf("%s %s  %s  %s", square, label, pct, cnt))
	}
	return lines
}
