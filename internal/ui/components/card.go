package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anu6598/otp-breach/internal/theme"
)

// Card wraps content in a rounded-border box with a title embedded in the
// top border. Compact mode drops the border and renders title + separator,
// used when the terminal is too narrow for box drawing.
type Card struct {
	Title   string // pre-styled, may carry ANSI codes
	Width   int    // total outer width
	Content string // pre-rendered content lines
	Compact bool
}

// InnerWidth returns the usable content width inside the card.
func (c Card) InnerWidth() int {
	if c.Compact {
		return c.Width - 2
	}
	return c.Width - 4 // border chars plus padding on each side
}

// Render returns the styled card string.
func (c Card) Render() string {
	if c.Compact {
		return c.renderCompact()
	}
	return c.renderFull()
}

func (c Card) renderCompact() string {
	sepWidth := c.Width - 4
	if sepWidth < 1 {
		sepWidth = 1
	}
	sep := theme.MutedStyle.Render("  " + strings.Repeat("─", sepWidth))
	if c.Content == "" {
		return c.Title + "\n" + sep
	}
	return c.Title + "\n" + sep + "\n" + c.Content
}

func (c Card) renderFull() string {
	bs := lipgloss.NewStyle().Foreground(theme.ColorBorder)
	innerWidth := c.Width - 2

	title := ""
	titleWidth := 0
	if c.Title != "" {
		title = " " + c.Title + " "
		titleWidth = lipgloss.Width(title)
	}
	trailing := innerWidth - 1 - titleWidth
	if trailing < 0 {
		trailing = 0
	}
	top := bs.Render("╭─") + title + bs.Render(strings.Repeat("─", trailing)+"╮")

	contentWidth := innerWidth - 2
	var body []string
	for _, line := range strings.Split(c.Content, "\n") {
		pad := contentWidth - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
		}
		body = append(body,
			bs.Render("│")+" "+line+strings.Repeat(" ", pad)+" "+bs.Render("│"))
	}

	bottom := bs.Render("╰" + strings.Repeat("─", innerWidth) + "╯")

	return top + "\n" + strings.Join(body, "\n") + "\n" + bottom
}
