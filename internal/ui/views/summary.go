package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anu6598/otp-breach/internal/domain"
	"github.com/anu6598/otp-breach/internal/i18n"
	"github.com/anu6598/otp-breach/internal/report"
	"github.com/anu6598/otp-breach/internal/theme"
	"github.com/anu6598/otp-breach/internal/ui/components"
)

// summaryTableRows caps the per-OTP-count table; the distribution tail
// is long and the interesting buckets sit at the top counts.
const summaryTableRows = 12

// SummaryView shows the threshold-adequacy narrative, the verdict banner
// and the OTP-count distribution summary.
type SummaryView struct {
	assessment report.Assessment
	shares     []domain.Bucket
	AnimTick   uint
}

func NewSummaryView() *SummaryView {
	return &SummaryView{}
}

// SetData replaces the filtered record set and the applied range bounds.
func (v *SummaryView) SetData(records []domain.Record, start, end time.Time) {
	v.assessment = report.Assess(domain.ComputeMetrics(records), start, end)
	v.shares = domain.SummaryShares(domain.GroupByOTPCount(records))
}

func (v *SummaryView) Update(msg tea.Msg) tea.Cmd {
	return nil
}

func (v *SummaryView) Render(width, height int, compact bool) string {
	cardWidth := width - 4

	sections := []string{
		v.renderAnalysis(cardWidth, compact),
		v.renderDistribution(cardWidth, compact),
	}
	return strings.Join(sections, "\n")
}

// ── Section 1: Threshold Analysis — narrative + verdict banner ──

func (v *SummaryView) renderAnalysis(cardWidth int, compact bool) string {
	card := components.Card{
		Title:   theme.AnimatedGradientText(i18n.T("threshold_analysis"), v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}

	var lines []string
	for _, line := range strings.Split(v.assessment.Narrative(), "\n") {
		lines = append(lines, "  "+theme.BodyStyle.Render(line))
	}
	lines = append(lines, "")

	banner := "  " + v.assessment.Banner()
	if v.assessment.Severity == report.SeveritySuccess && v.assessment.Metrics.HasData {
		lines = append(lines, theme.SuccessStyle.Render(banner))
	} else if v.assessment.Metrics.HasData {
		lines = append(lines, theme.WarningStyle.Render(banner))
	} else {
		lines = append(lines, theme.MutedStyle.Render(banner))
	}

	card.Content = strings.Join(lines, "\n")
	return card.Render()
}

// ── Section 2: Data Summary — bucket table + share donut ──

func (v *SummaryView) renderDistribution(cardWidth int, compact bool) string {
	card := components.Card{
		Title:   theme.AnimatedGradientText(i18n.T("otp_summary"), v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}

	if len(v.shares) == 0 {
		card.Content = theme.MutedStyle.Render(i18n.T("no_data"))
		return card.Render()
	}

	innerW := card.InnerWidth()
	table := v.renderShareTable()
	pie := v.renderSharePie(innerW)

	card.Content = table + "\n\n" + pie
	return card.Render()
}

func (v *SummaryView) renderShareTable() string {
	header := fmt.Sprintf("  %9s  %10s  %8s",
		i18n.T("col_otp_count"), i18n.T("users"), i18n.T("share_of_users"))
	lines := []string{theme.HeaderStyle.Render(header)}

	shown := len(v.shares)
	if shown > summaryTableRows {
		shown = summaryTableRows
	}
	for i := 0; i < shown; i++ {
		b := v.shares[i]
		row := fmt.Sprintf("  %9d  %10s  %8s",
			b.OTPCount,
			components.FormatNumber(b.UserCount),
			components.FormatPercent(b.Share))
		lines = append(lines, components.RowBackground(i).Render(row))
	}
	if shown < len(v.shares) {
		lines = append(lines, theme.MutedStyle.Render(
			fmt.Sprintf("  … %d more buckets", len(v.shares)-shown)))
	}
	return strings.Join(lines, "\n")
}

func (v *SummaryView) renderSharePie(innerW int) string {
	var slices []components.PieSlice
	for _, b := range v.shares {
		slices = append(slices, components.PieSlice{
			Label:      fmt.Sprintf("%d OTPs", b.OTPCount),
			Count:      b.UserCount,
			Percentage: b.Share,
		})
	}

	chartSize := innerW / 5
	if chartSize < 10 {
		chartSize = 10
	}
	if chartSize > 16 {
		chartSize = 16
	}

	pie := components.PieChart{
		Slices:    slices,
		ChartSize: chartSize,
		Width:     innerW,
	}

	title := components.CenterText(theme.MutedStyle.Render(i18n.T("share_pie")), innerW)
	return title + "\n" + components.CenterBlock(pie.Render(), innerW)
}
