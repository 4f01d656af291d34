package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anu6598/otp-breach/internal/domain"
	"github.com/anu6598/otp-breach/internal/i18n"
	"github.com/anu6598/otp-breach/internal/theme"
	"github.com/anu6598/otp-breach/internal/ui/components"
)

// PreviewRows caps the data preview table.
const PreviewRows = 10

// MetricsView shows the data preview table and the four headline
// stat cards for the filtered range.
type MetricsView struct {
	records  []domain.Record
	metrics  domain.Metrics
	AnimTick uint
}

func NewMetricsView() *MetricsView {
	return &MetricsView{}
}

// SetData replaces the filtered record set and recomputes the metrics.
func (v *MetricsView) SetData(records []domain.Record) {
	v.records = records
	v.metrics = domain.ComputeMetrics(records)
}

func (v *MetricsView) Update(msg tea.Msg) tea.Cmd {
	return nil
}

func (v *MetricsView) Render(width, height int, compact bool) string {
	cardWidth := width - 4

	sections := []string{
		v.renderPreview(cardWidth, compact),
		v.renderStats(cardWidth, compact),
	}
	return strings.Join(sections, "\n")
}

// ── Section 1: Data Preview — first rows of the filtered set ──

func (v *MetricsView) renderPreview(cardWidth int, compact bool) string {
	card := components.Card{
		Title:   theme.AnimatedGradientText(i18n.T("data_preview"), v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}

	if len(v.records) == 0 {
		card.Content = theme.MutedStyle.Render(i18n.T("no_data"))
		return card.Render()
	}

	shown := len(v.records)
	if shown > PreviewRows {
		shown = PreviewRows
	}

	header := fmt.Sprintf("  %-12s  %9s  %10s  %-10s  %5s",
		i18n.T("col_event_date"),
		i18n.T("col_otp_count"),
		i18n.T("col_user_count"),
		i18n.T("col_month"),
		i18n.T("col_year"))

	lines := []string{theme.HeaderStyle.Render(header)}
	for i := 0; i < shown; i++ {
		r := v.records[i]
		row := fmt.Sprintf("  %-12s  %9s  %10s  %-10s  %5d",
			r.EventDate.Format("2006-01-02"),
			components.FormatNumber(r.OTPCount),
			components.FormatNumber(r.UserCount),
			r.MonthName,
			r.Year)
		lines = append(lines, components.RowBackground(i).Render(row))
	}
	lines = append(lines, "")
	lines = append(lines, components.HelpFooter(i18n.Tf("preview_rows", shown, len(v.records))))

	card.Content = strings.Join(lines, "\n")
	return card.Render()
}

// ── Section 2: Key Metrics — 4 stat cards + share gauge ──

func (v *MetricsView) renderStats(cardWidth int, compact bool) string {
	card := components.Card{
		Title:   theme.AnimatedGradientText(i18n.T("key_metrics"), v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}

	m := v.metrics
	if !m.HasData {
		card.Content = theme.MutedStyle.Render(i18n.T("no_data"))
		return card.Render()
	}

	innerW := card.InnerWidth()
	statGap := 2

	quarterW := (innerW - statGap*3) / 4
	if quarterW < 12 {
		quarterW = 12
	}

	row := []components.StatCard{
		{
			Value: components.FormatNumber(m.TotalUsers),
			Label: i18n.T("total_users"),
			Width: quarterW,
			Color: theme.ColorSkyBlue,
		},
		{
			Value: components.FormatNumber(m.UsersOverThreshold),
			Label: i18n.Tf("users_over", domain.Threshold),
			Width: quarterW,
			Color: theme.ColorTeal,
		},
		{
			Value: components.FormatPercent(m.PercentOverThreshold),
			Label: i18n.T("percent_over"),
			Width: quarterW,
			Color: theme.ColorViolet,
		},
		{
			Value: components.FormatNumber(m.MaxOTPCount),
			Label: i18n.T("max_otps"),
			Width: quarterW,
			Color: theme.ColorAmber,
		},
	}

	gaugeW := innerW / 3
	if gaugeW > 24 {
		gaugeW = 24
	}
	gauge := components.SemicircleGauge{
		Label:   i18n.T("share_over"),
		Percent: m.PercentOverThreshold / 100.0,
		Width:   gaugeW,
	}

	content := components.CenterBlock(components.RenderStatRow(row, statGap), innerW) + "\n\n" +
		components.CenterBlock(strings.Join(gauge.Render(), "\n"), innerW)
	card.Content = content
	return card.Render()
}
