package components

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anu6598/otp-breach/internal/theme"
)

// LinePoint is one (x, y) sample of a trend series.
type LinePoint struct {
	X int
	Y int
}

// LineChart renders a connected line+marker series on a braille canvas
// with a logarithmic Y scale and an optional vertical threshold rule.
type LineChart struct {
	Points     []LinePoint // sorted by X ascending
	ThresholdX int         // dashed vertical rule position; < 0 disables
	Annotation string      // label drawn above the rule
	XLabel     string
	YLabel     string
	Width      int // character width of the whole block
	PlotHeight int // character height of the plot area
}

const (
	lineChartGutter   = 8 // y-axis label gutter, characters
	seriesColorIdx    = 0
	thresholdColorIdx = 1
)

var (
	lineAxisStyle      = lipgloss.NewStyle().Foreground(theme.ColorMutedText)
	lineThresholdStyle = lipgloss.NewStyle().Foreground(theme.ColorThreshold)
)

// Render returns the chart as a block of lines: annotation, plot rows
// with a y-label gutter, an x-axis ruler, and axis captions.
func (lc LineChart) Render() []string {
	if len(lc.Points) == 0 {
		return []string{theme.MutedStyle.Render("  no data")}
	}

	plotW := lc.Width - lineChartGutter
	if plotW < 10 {
		plotW = 10
	}
	plotH := lc.PlotHeight
	if plotH < 4 {
		plotH = 4
	}

	maxX, maxY := lc.extents()

	canvas := NewBrailleCanvas(plotW, plotH)
	pxW, pxH := canvas.PixelWidth(), canvas.PixelHeight()

	toPixel := func(p LinePoint) (int, int) {
		px := 0
		if maxX > 0 {
			px = int(math.Round(float64(p.X) / float64(maxX) * float64(pxW-2)))
		}
		py := (pxH - 1) - int(math.Round(logScale(p.Y, maxY)*float64(pxH-2)))
		return px, py
	}

	// Threshold rule first so the series draws over it.
	ruleX := -1
	if lc.ThresholdX >= 0 && maxX > 0 {
		ruleX = int(math.Round(float64(lc.ThresholdX) / float64(maxX) * float64(pxW-2)))
		canvas.DrawVLineDashed(ruleX, 0, pxH-1, thresholdColorIdx)
	}

	prevX, prevY := 0, 0
	for i, p := range lc.Points {
		px, py := toPixel(p)
		if i > 0 {
			canvas.DrawLine(prevX, prevY, px, py, seriesColorIdx)
		}
		canvas.DrawMarker(px, py, seriesColorIdx)
		prevX, prevY = px, py
	}

	palette := []string{string(theme.ColorSkyBlue), string(theme.ColorThreshold)}
	plotLines := canvas.Render(palette, theme.ColorGaugeDim)

	var out []string
	if lc.Annotation != "" && ruleX >= 0 {
		out = append(out, lc.annotationLine(ruleX/2, plotW))
	}

	// Plot rows with y labels on the top and bottom rows.
	for i, line := range plotLines {
		label := ""
		switch i {
		case 0:
			label = FormatCompact(maxY)
		case len(plotLines) - 1:
			label = "0"
		}
		gutter := lineAxisStyle.Render(PadLeft(label, lineChartGutter-2) + " │")
		out = append(out, gutter+line)
	}

	out = append(out, lc.xAxis(plotW, maxX, ruleX/2))
	if lc.XLabel != "" || lc.YLabel != "" {
		caption := lc.XLabel
		if lc.YLabel != "" {
			caption += "  ·  " + lc.YLabel
		}
		out = append(out, CenterText(theme.MutedStyle.Render(caption), lc.Width))
	}
	return out
}

// extents returns the drawing bounds, stretched to keep the threshold
// rule inside the plot.
func (lc LineChart) extents() (maxX, maxY int) {
	for _, p := range lc.Points {
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if lc.ThresholdX > maxX {
		maxX = lc.ThresholdX
	}
	if maxY < 1 {
		maxY = 1
	}
	return maxX, maxY
}

func (lc LineChart) annotationLine(ruleCol, plotW int) string {
	col := lineChartGutter + ruleCol + 2
	if col+len(lc.Annotation) > lineChartGutter+plotW {
		col = lineChartGutter + plotW - len(lc.Annotation)
		if col < 0 {
			col = 0
		}
	}
	return strings.Repeat(" ", col) + lineThresholdStyle.Render(lc.Annotation)
}

// xAxis renders the ruler row: origin, threshold and max tick labels.
func (lc LineChart) xAxis(plotW, maxX, ruleCol int) string {
	axis := []rune(strings.Repeat("─", plotW))
	axis[0] = '└'
	ruler := string(axis)

	labels := make([]rune, plotW)
	for i := range labels {
		labels[i] = ' '
	}
	place := func(col int, s string) {
		for i, r := range s {
			if col+i >= 0 && col+i < plotW {
				labels[col+i] = r
			}
		}
	}
	place(0, "0")
	if maxX > 0 {
		maxLabel := strconv.Itoa(maxX)
		place(plotW-len(maxLabel)-1, maxLabel)
	}
	if lc.ThresholdX >= 0 && ruleCol > 0 {
		place(ruleCol, strconv.Itoa(lc.ThresholdX))
	}

	gutter := strings.Repeat(" ", lineChartGutter)
	return gutter + lineAxisStyle.Render(ruler) + "\n" +
		gutter + lineAxisStyle.Render(string(labels))
}

// logScale maps y onto [0, 1] logarithmically. log1p keeps zero counts
// plottable at the baseline.
func logScale(y, maxY int) float64 {
	if y < 0 {
		y = 0
	}
	denom := math.Log1p(float64(maxY))
	if denom == 0 {
		return 0
	}
	return math.Log1p(float64(y)) / denom
}
