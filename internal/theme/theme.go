package theme

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Base palette
var (
	ColorSkyBlue = lipgloss.Color("#7fb4d8") // C1
	ColorTeal    = lipgloss.Color("#7fd8c4") // C2
	ColorViolet  = lipgloss.Color("#b49fd8") // C3
	ColorAmber   = lipgloss.Color("#e8c98a") // C4
	ColorCoral   = lipgloss.Color("#e89a8a") // C5
)

// Background tones (dark theme)
var (
	ColorBaseBg     = lipgloss.Color("#16202a")
	ColorOverlayBg  = lipgloss.Color("#101820")
	ColorCardBg     = lipgloss.Color("#1e2a36")
	ColorElevatedBg = lipgloss.Color("#263442")
	ColorBorder     = lipgloss.Color("#34465a")
	ColorMutedText  = lipgloss.Color("#64788c")
	ColorBodyText   = lipgloss.Color("#c4d0dc")
	ColorBrightText = lipgloss.Color("#eaf1f7")
)

// Status colors for the adequacy banner and threshold marker.
var (
	ColorSuccess   = lipgloss.Color("#8ad8a0")
	ColorWarning   = lipgloss.Color("#e8b45a")
	ColorThreshold = lipgloss.Color("#f07070") // threshold rule on charts
)

// Gradient stops for chart and title gradients (5-color)
var ProgressGradient = []string{
	"#7fb4d8", // C1 - start
	"#7fd8c4", // C2
	"#b49fd8", // C3
	"#e8c98a", // C4
	"#e89a8a", // C5 - end
}

// Raw hex values for braille canvas rendering (no lipgloss.Color).
var (
	ColorGaugeDim   = "#263442"
	ColorPieChartBg = "#304050"
)

// LerpColor interpolates between two hex colors.
func LerpColor(from, to string, t float64) string {
	r1, g1, b1 := HexToRGB(from)
	r2, g2, b2 := HexToRGB(to)

	r := uint8(float64(r1) + t*(float64(r2)-float64(r1)))
	g := uint8(float64(g1) + t*(float64(g2)-float64(g1)))
	b := uint8(float64(b1) + t*(float64(b2)-float64(b1)))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func HexToRGB(hex string) (uint8, uint8, uint8) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}

// GradientText applies a gradient color across a string.
func GradientText(text, fromHex, toHex string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(text) * 20) // pre-allocate for ANSI escape overhead
	style := lipgloss.NewStyle()
	for i, r := range runes {
		t := float64(i) / float64(max(len(runes)-1, 1))
		color := LerpColor(fromHex, toHex, t)
		sb.WriteString(style.Foreground(lipgloss.Color(color)).Render(string(r)))
	}
	return sb.String()
}

// AnimatedGradientText applies a narrow sliding gradient across text.
// tick is incremented by the UI animation timer.
// Optional bg parameter sets a background color on each character.
func AnimatedGradientText(text string, tick uint, bg ...lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	stops := ProgressGradient
	n := float64(len(stops))

	// Narrow window: text spans ~1.5 color segments at a time.
	windowSize := 1.5 / n

	// Phase: full cycle in 10 seconds (100 ticks x 100ms)
	phase := float64(tick) * 0.01
	phase = phase - math.Floor(phase)

	var sb strings.Builder
	sb.Grow(len(text) * 20)
	baseStyle := lipgloss.NewStyle()
	if len(bg) > 0 {
		baseStyle = baseStyle.Background(bg[0])
	}
	for i, r := range runes {
		charT := float64(i) / float64(max(len(runes)-1, 1))
		t := phase + charT*windowSize
		t = t - math.Floor(t) // wrap to [0, 1)
		color := multiStopGradientWrap(t, stops)
		sb.WriteString(baseStyle.Foreground(lipgloss.Color(color)).Render(string(r)))
	}
	return sb.String()
}

// multiStopGradientWrap interpolates through stops with wrapping (last -> first).
func multiStopGradientWrap(t float64, stops []string) string {
	t = t - math.Floor(t)
	n := len(stops)
	pos := t * float64(n)
	idx := int(pos)
	if idx >= n {
		idx = 0
	}
	localT := pos - math.Floor(pos)
	next := (idx + 1) % n
	return LerpColor(stops[idx], stops[next], localT)
}

// MultiStopGradient interpolates through multiple color stops.
func MultiStopGradient(t float64, stops []string) string {
	if len(stops) < 2 {
		return stops[0]
	}
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}

	segments := len(stops) - 1
	segment := int(t * float64(segments))
	if segment >= segments {
		segment = segments - 1
	}
	localT := t*float64(segments) - float64(segment)

	return LerpColor(stops[segment], stops[segment+1], localT)
}

// Common styles
var (
	CardStyle = lipgloss.NewStyle().
			Background(ColorCardBg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorBrightText).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMutedText)

	BodyStyle = lipgloss.NewStyle().
			Foreground(ColorBodyText)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)
)
