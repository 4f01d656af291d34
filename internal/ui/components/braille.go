package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anu6598/otp-breach/internal/theme"
)

// brailleDots maps [row][col] to braille dot bit positions.
// Each braille character is a 2-wide x 4-tall pixel grid.
var brailleDots = [4][2]int{
	{0x01, 0x08}, // row 0
	{0x02, 0x10}, // row 1
	{0x04, 0x20}, // row 2
	{0x40, 0x80}, // row 3
}

// BrailleCanvas is a pixel grid that renders to braille characters.
type BrailleCanvas struct {
	Width  int // character width
	Height int // character height
	pixels [][]BraillePixel
}

// BraillePixel holds the state of a single sub-character dot.
type BraillePixel struct {
	On       bool
	ColorIdx int // -1 = dim/unfilled, 0+ = palette index
}

// NewBrailleCanvas creates a canvas of the given character dimensions.
func NewBrailleCanvas(charW, charH int) *BrailleCanvas {
	pxW, pxH := charW*2, charH*4
	pixels := make([][]BraillePixel, pxH)
	for y := range pixels {
		pixels[y] = make([]BraillePixel, pxW)
		for x := range pixels[y] {
			pixels[y][x].ColorIdx = -1
		}
	}
	return &BrailleCanvas{Width: charW, Height: charH, pixels: pixels}
}

// PixelWidth returns the horizontal pixel resolution.
func (c *BrailleCanvas) PixelWidth() int { return c.Width * 2 }

// PixelHeight returns the vertical pixel resolution.
func (c *BrailleCanvas) PixelHeight() int { return c.Height * 4 }

// Set turns on a pixel with the given color index.
func (c *BrailleCanvas) Set(x, y, colorIdx int) {
	if x >= 0 && x < c.PixelWidth() && y >= 0 && y < c.PixelHeight() {
		c.pixels[y][x] = BraillePixel{On: true, ColorIdx: colorIdx}
	}
}

// DrawLine draws a straight pixel line from (x0, y0) to (x1, y1).
func (c *BrailleCanvas) DrawLine(x0, y0, x1, y1, colorIdx int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, colorIdx)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawVLineDashed draws a dashed vertical pixel line at x from yTop to
// yBottom (used for threshold rules).
func (c *BrailleCanvas) DrawVLineDashed(x, yTop, yBottom, colorIdx int) {
	if yTop > yBottom {
		yTop, yBottom = yBottom, yTop
	}
	for y := yTop; y <= yBottom; y++ {
		if (y/2)%2 == 0 { // 2-on / 2-off dash pattern
			c.Set(x, y, colorIdx)
		}
	}
}

// DrawMarker sets a 2x2 pixel block centered at (x, y) so data points
// stand out from the connecting line.
func (c *BrailleCanvas) DrawMarker(x, y, colorIdx int) {
	c.Set(x, y, colorIdx)
	c.Set(x+1, y, colorIdx)
	c.Set(x, y+1, colorIdx)
	c.Set(x+1, y+1, colorIdx)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Render converts the pixel grid to styled braille strings.
// palette maps color index to hex color string.
// dimColor is used for unfilled (colorIdx == -1) pixels.
func (c *BrailleCanvas) Render(palette []string, dimColor string) []string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(dimColor))
	styles := make([]lipgloss.Style, len(palette))
	for i, hex := range palette {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}

	var lines []string
	for cr := 0; cr < c.Height; cr++ {
		var sb strings.Builder
		for cc := 0; cc < c.Width; cc++ {
			code := 0x2800
			// Count which color is dominant in this character cell
			counts := make(map[int]int)
			for dr := 0; dr < 4; dr++ {
				for dc := 0; dc < 2; dc++ {
					px, py := cc*2+dc, cr*4+dr
					if px < c.PixelWidth() && py < c.PixelHeight() && c.pixels[py][px].On {
						code |= brailleDots[dr][dc]
						counts[c.pixels[py][px].ColorIdx]++
					}
				}
			}
			if code == 0x2800 {
				sb.WriteString(" ")
				continue
			}
			ch := string(rune(code))
			bestIdx, bestCnt := -1, 0
			for idx, cnt := range counts {
				if cnt > bestCnt {
					bestIdx = idx
					bestCnt = cnt
				}
			}
			if bestIdx >= 0 && bestIdx < len(styles) {
				sb.WriteString(styles[bestIdx].Render(ch))
			} else {
				sb.WriteString(dimStyle.Render(ch))
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// RenderGradient converts the pixel grid to styled braille strings using
// the progress gradient. Filled pixels encode a normalized position in
// ColorIdx (position*1000); colorIdx == -1 pixels get dimColor.
func (c *BrailleCanvas) RenderGradient(dimColor string) []string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(dimColor))
	style := lipgloss.NewStyle()

	var lines []string
	for cr := 0; cr < c.Height; cr++ {
		var sb strings.Builder
		for cc := 0; cc < c.Width; cc++ {
			code := 0x2800
			filledCount := 0
			dimCount := 0
			var sumPos float64

			for dr := 0; dr < 4; dr++ {
				for dc := 0; dc < 2; dc++ {
					px, py := cc*2+dc, cr*4+dr
					if px < c.PixelWidth() && py < c.PixelHeight() && c.pixels[py][px].On {
						code |= brailleDots[dr][dc]
						if c.pixels[py][px].ColorIdx >= 0 {
							filledCount++
							sumPos += float64(c.pixels[py][px].ColorIdx) / 1000.0
						} else {
							dimCount++
						}
					}
				}
			}

			if code == 0x2800 {
				sb.WriteString(" ")
				continue
			}

			ch := string(rune(code))
			if filledCount > dimCount && filledCount > 0 {
				t := sumPos / float64(filledCount)
				if t > 1 {
					t = 1
				}
				hex := theme.MultiStopGradient(t, theme.ProgressGradient)
				sb.WriteString(style.Foreground(lipgloss.Color(hex)).Render(ch))
			} else {
				sb.WriteString(dimStyle.Render(ch))
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// DrawRing sets pixels on a ring (donut) shape.
// cx, cy: center in pixel coords. outerR, innerR: radii.
// startAngle, endAngle: in radians (0 = top, clockwise).
func (c *BrailleCanvas) DrawRing(cx, cy, outerR, innerR, startAngle, endAngle float64, colorIdx int) {
	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			dx := float64(x) - cx + 0.5
			dy := float64(y) - cy + 0.5
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < innerR || dist > outerR {
				continue
			}
			// Angle from top, clockwise
			angle := math.Atan2(-dx, -dy)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			if angle >= startAngle && angle <= endAngle {
				c.Set(x, y, colorIdx)
			}
		}
	}
}

// DrawSemicircle sets pixels on a semicircle arc (top half).
// cx, cy: center (bottom-center of the semicircle).
// fillFraction: 0..1 how much is filled (left to right).
// Uses gradient encoding: colorIdx = int(normalizedAngle * 1000).
func (c *BrailleCanvas) DrawSemicircle(cx, cy, outerR, innerR, fillFraction float64) {
	fillAngle := -math.Pi + fillFraction*math.Pi
	if fillAngle > 0 {
		fillAngle = 0
	}

	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			dx := float64(x) - cx + 0.5
			dy := float64(y) - cy + 0.5
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < innerR || dist > outerR || dy > 1 {
				continue
			}
			angle := math.Atan2(dy, dx) // -pi (left) -> 0 (right)
			if angle <= fillAngle {
				t := (angle + math.Pi) / math.Pi // 0..1
				c.Set(x, y, int(t*1000))
			} else {
				c.Set(x, y, -1)
			}
		}
	}
}
