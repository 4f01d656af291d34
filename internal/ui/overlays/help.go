package overlays

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anu6598/otp-breach/internal/i18n"
	"github.com/anu6598/otp-breach/internal/theme"
)

type HelpOverlay struct {
	AnimTick uint
}

func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{}
}

func (h *HelpOverlay) Render(width, height int) string {
	title := theme.AnimatedGradientText(i18n.T("keyboard_shortcuts"), h.AnimTick, theme.ColorCardBg)

	bindings := []struct {
		key  string
		desc string
	}{
		{"1 / 2 / 3", i18n.T("help_switch_views")},
		{"Tab / Shift+Tab", i18n.T("help_cycle_views")},
		{"", ""},
		{"h / l / Left / Right", i18n.T("help_months")},
		{"t", i18n.T("help_date_range")},
		{"", ""},
		{"d", i18n.T("help_export")},
		{"x", i18n.T("help_export_chart")},
		{"r", i18n.T("help_refresh")},
		{"", ""},
		{"s", i18n.T("help_settings")},
		{"? ", i18n.T("help_toggle_help")},
		{"q / Ctrl+C", i18n.T("help_quit")},
	}

	maxKeyLen := 0
	for _, b := range bindings {
		if len(b.key) > maxKeyLen {
			maxKeyLen = len(b.key)
		}
	}

	bg := theme.ColorCardBg
	keyStyle := lipgloss.NewStyle().Foreground(theme.ColorAmber).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)

	var rows []string
	for _, b := range bindings {
		if b.key == "" {
			rows = append(rows, "")
			continue
		}
		padded := fmt.Sprintf("%-*s", maxKeyLen, b.key)
		rows = append(rows, fmt.Sprintf("  %s%s",
			keyStyle.Render(padded),
			descStyle.Render("  "+b.desc),
		))
	}

	content := title + "\n\n" + strings.Join(rows, "\n") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(i18n.T("help_close"))

	boxWidth := 60
	if width < 64 {
		boxWidth = width - 4
	}

	return theme.CardStyle.
		Width(boxWidth).
		Render(content)
}
