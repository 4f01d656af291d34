package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anu6598/otp-breach/internal/config"
	"github.com/anu6598/otp-breach/internal/i18n"
	"github.com/anu6598/otp-breach/internal/ui/overlays"
)

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if !a.ready {
			a.ready = true
			return a, doTick(time.Duration(a.Config.General.Interval) * time.Second)
		}
		return a, nil

	case tea.KeyMsg:
		if a.overlay != OverlayNone {
			return a.updateOverlay(msg)
		}
		return a.handleGlobalKey(msg)

	case BlinkMsg:
		a.animTick++
		a.propagateAnimTick()
		return a, doBlink()

	case TickMsg:
		a.notifications.Expire()
		if a.Store.Stale() {
			a.notifications.SetMessage(i18n.T("data_changed"))
		}
		return a, doTick(time.Duration(a.Config.General.Interval) * time.Second)

	case DataChangedMsg:
		a.notifications.SetMessage(i18n.T("data_changed"))
		return a, nil

	case dataLoadedMsg:
		if msg.err != nil {
			a.loadErr = msg.err
			a.loading = false
			return a, nil
		}
		a.loadErr = nil
		if !a.cliApplied {
			a.cliApplied = true
			if t, err := time.Parse("2006-01-02", a.SinceFilter); err == nil {
				a.startDate = t
			}
			if t, err := time.Parse("2006-01-02", a.UntilFilter); err == nil {
				a.endDate = t
			}
		}
		a.records = msg.records
		a.extraColumns = msg.extra
		a.minDate = msg.minDate
		a.maxDate = msg.maxDate
		a.processData()
		return a, nil

	case noticeMsg:
		a.notifications.SetMessage(string(msg))
		return a, nil

	case overlays.RangeAppliedMsg:
		a.startDate = msg.Start
		a.endDate = msg.End
		a.overlay = OverlayNone
		a.datePicker = nil
		a.processData()
		return a, nil

	case overlays.ConfigChangedMsg:
		a.Config = msg.Config
		i18n.SetLanguage(a.Config.General.Language)
		if newTz, err := time.LoadLocation(a.Config.General.Timezone); err == nil {
			a.tz = newTz
		}
		a.processData()
		return a, nil
	}

	return a, nil
}

func (a App) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case ViewMetrics:
		cmd = a.metricsView.Update(msg)
	case ViewTrends:
		cmd = a.trendsView.Update(msg)
	case ViewSummary:
		cmd = a.summaryView.Update(msg)
	}
	if cmd != nil {
		return a, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "1":
		a.activeView = ViewMetrics
	case "2":
		a.activeView = ViewTrends
	case "3":
		a.activeView = ViewSummary
	case "tab":
		a.activeView = (a.activeView + 1) % ViewCount
	case "shift+tab":
		a.activeView = (a.activeView + ViewCount - 1) % ViewCount
	case "?":
		a.overlay = OverlayHelp
	case "s":
		a.settingsOverlay = overlays.NewSettingsOverlay(a.Config, config.DefaultPath())
		a.overlay = OverlaySettings
	case "t":
		start, end := a.appliedRange()
		a.datePicker = overlays.NewDatePickerOverlay(start, end, a.minDate, a.maxDate)
		a.overlay = OverlayDateRange
	case "d":
		return a, a.exportCSV()
	case "x":
		if a.activeView == ViewTrends {
			return a, a.exportChart()
		}
	case "r":
		a.loading = true
		return a, a.loadData(true)
	}
	return a, nil
}

func (a App) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.overlay {
	case OverlayHelp:
		switch msg.String() {
		case "esc", "?":
			a.overlay = OverlayNone
		}
	case OverlaySettings:
		if a.settingsOverlay != nil {
			closed, cmd := a.settingsOverlay.Update(msg)
			if closed {
				a.overlay = OverlayNone
			}
			return a, cmd
		}
	case OverlayDateRange:
		if a.datePicker != nil {
			closed, cmd := a.datePicker.Update(msg)
			if closed {
				a.overlay = OverlayNone
			}
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) propagateAnimTick() {
	a.metricsView.AnimTick = a.animTick
	a.trendsView.AnimTick = a.animTick
	a.summaryView.AnimTick = a.animTick
	a.helpOverlay.AnimTick = a.animTick
	if a.settingsOverlay != nil {
		a.settingsOverlay.SetAnimTick(a.animTick)
	}
	if a.datePicker != nil {
		a.datePicker.SetAnimTick(a.animTick)
	}
}
