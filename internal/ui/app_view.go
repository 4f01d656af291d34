package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/anu6598/otp-breach/internal/i18n"
	"github.com/anu6598/otp-breach/internal/theme"
	"github.com/anu6598/otp-breach/internal/ui/components"
)

func (a App) View() string {
	if !a.ready {
		return i18n.T("initializing")
	}

	if a.width < 80 || a.height < 24 {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.ColorCoral).Render(
				i18n.T("terminal_too_small")+"\n"+
					i18n.Tf("current_size", a.width, a.height),
			),
		)
	}

	if a.loadErr != nil {
		return a.renderLoadError()
	}

	if a.overlay != OverlayNone {
		overlay := a.renderOverlay()
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			overlay,
			lipgloss.WithWhitespaceBackground(theme.ColorOverlayBg),
		)
	}

	compact := a.height < 30

	tabBar := a.renderTabs()
	statusBar := a.renderStatusBar()

	contentHeight := a.height - 4 // 2 tab + 2 status
	if contentHeight < 5 {
		contentHeight = 5
	}

	content := a.renderActiveView(contentHeight, compact)
	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	banner := a.notifications.RenderBanner(a.width)
	if banner != "" {
		return tabBar + "\n" + content + "\n" + banner
	}

	return tabBar + "\n" + content + "\n" + statusBar
}

// renderLoadError keeps the dashboard up with a fix-and-retry hint
// instead of exiting on a bad source file.
func (a App) renderLoadError() string {
	body := theme.WarningStyle.Render(i18n.T("load_error")) + "\n\n" +
		theme.BodyStyle.Render(a.loadErr.Error()) + "\n\n" +
		theme.MutedStyle.Render(i18n.T("load_error_hint"))

	boxWidth := 64
	if a.width < 68 {
		boxWidth = a.width - 4
	}
	box := theme.CardStyle.Width(boxWidth).Render(body)

	return lipgloss.Place(a.width, a.height,
		lipgloss.Center, lipgloss.Center, box)
}

func (a App) renderTabs() string {
	viewNames := []string{i18n.T("tab_metrics"), i18n.T("tab_trends"), i18n.T("tab_summary")}

	var rangeDisplay string
	if !a.startDate.IsZero() || !a.endDate.IsZero() {
		start, end := a.appliedRange()
		rangeDisplay = i18n.Tf("active_range",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	return components.TabBar{
		ViewNames:   viewNames,
		ActiveIndex: int(a.activeView),
		Width:       a.width,
		ActiveRange: rangeDisplay,
	}.Render()
}

func (a App) renderActiveView(contentHeight int, compact bool) string {
	switch a.activeView {
	case ViewMetrics:
		return a.metricsView.Render(a.width, contentHeight, compact)
	case ViewTrends:
		return a.trendsView.Render(a.width, contentHeight, compact)
	case ViewSummary:
		return a.summaryView.Render(a.width, contentHeight, compact)
	}
	return ""
}

func (a App) renderStatusBar() string {
	return components.StatusBar{Width: a.width}.Render()
}

func (a App) renderOverlay() string {
	switch a.overlay {
	case OverlayHelp:
		return a.helpOverlay.Render(a.width, a.height)
	case OverlaySettings:
		if a.settingsOverlay != nil {
			return a.settingsOverlay.Render(a.width, a.height)
		}
	case OverlayDateRange:
		if a.datePicker != nil {
			return a.datePicker.Render(a.width, a.height)
		}
	}
	return theme.CardStyle.Width(60).Height(20).Render("Overlay")
}
