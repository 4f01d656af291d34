package ui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anu6598/otp-breach/internal/chart"
	"github.com/anu6598/otp-breach/internal/domain"
	"github.com/anu6598/otp-breach/internal/export"
	"github.com/anu6598/otp-breach/internal/i18n"
	"github.com/anu6598/otp-breach/internal/parser"
)

// loadData reads the dataset through the cache. refresh forces a
// re-read of the source file.
func (a App) loadData(refresh bool) tea.Cmd {
	st := a.Store
	return func() tea.Msg {
		var (
			ds  *parser.Dataset
			err error
		)
		if refresh {
			ds, err = st.Refresh()
		} else {
			ds, err = st.Dataset()
		}
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		minDate, maxDate, _ := domain.Bounds(ds.Records)
		return dataLoadedMsg{
			records: ds.Records,
			extra:   ds.ExtraColumns,
			minDate: minDate,
			maxDate: maxDate,
		}
	}
}

// processData applies the date range filter and pushes the filtered
// set into every view. Called on load and whenever the range changes.
func (a *App) processData() {
	a.filtered = domain.FilterByDateRange(a.records, a.startDate, a.endDate)

	start, end := a.appliedRange()
	a.metricsView.SetData(a.filtered)
	a.trendsView.SetData(a.filtered)
	a.summaryView.SetData(a.filtered, start, end)

	a.loading = false
}

// appliedRange resolves the filter boundaries shown to the user: zero
// filter values fall back to the dataset bounds.
func (a *App) appliedRange() (start, end time.Time) {
	start, end = a.startDate, a.endDate
	if start.IsZero() {
		start = a.minDate
	}
	if end.IsZero() {
		end = a.maxDate
	}
	return start, end
}

// exportCSV writes the current filtered slice next to the process
// working directory under the fixed export name.
func (a App) exportCSV() tea.Cmd {
	records := a.filtered
	extra := a.extraColumns
	return func() tea.Msg {
		dir, err := os.Getwd()
		if err != nil {
			dir = "."
		}
		path, err := export.WriteFile(dir, records, extra)
		if err != nil {
			return noticeMsg(i18n.Tf("export_failed", err.Error()))
		}
		return noticeMsg(i18n.Tf("export_saved", path))
	}
}

// exportChart writes the active trend month as a PNG.
func (a App) exportChart() tea.Cmd {
	month := a.trendsView.ActiveMonth()
	buckets := a.trendsView.ActiveBuckets()
	return func() tea.Msg {
		if month == 0 {
			return noticeMsg(i18n.T("no_months"))
		}
		dir, err := os.Getwd()
		if err != nil {
			dir = "."
		}
		path, err := chart.WriteFile(dir, month, buckets)
		if err != nil {
			return noticeMsg(i18n.Tf("chart_failed", err.Error()))
		}
		return noticeMsg(i18n.Tf("chart_saved", path))
	}
}
