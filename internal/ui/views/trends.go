package views

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anu6598/otp-breach/internal/domain"
	"github.com/anu6598/otp-breach/internal/i18n"
	"github.com/anu6598/otp-breach/internal/report"
	"github.com/anu6598/otp-breach/internal/theme"
	"github.com/anu6598/otp-breach/internal/ui/components"
)

// TrendsView shows one OTP-count/user-count trend chart per season month,
// switchable with h/l.
type TrendsView struct {
	records  []domain.Record
	months   []time.Month
	active   int
	AnimTick uint
}

func NewTrendsView() *TrendsView {
	return &TrendsView{}
}

// SetData replaces the filtered record set and rebuilds the month tabs.
// The active tab is kept where possible.
func (v *TrendsView) SetData(records []domain.Record) {
	prev := v.ActiveMonth()
	v.records = records
	v.months = domain.MonthsInRange(records)
	v.active = 0
	for i, m := range v.months {
		if m == prev {
			v.active = i
			break
		}
	}
}

// ActiveMonth returns the month under the cursor, or 0 when the range
// holds no season months.
func (v *TrendsView) ActiveMonth() time.Month {
	if v.active < 0 || v.active >= len(v.months) {
		return 0
	}
	return v.months[v.active]
}

// ActiveBuckets returns the OTP-count distribution for the active month,
// for chart export.
func (v *TrendsView) ActiveBuckets() []domain.Bucket {
	month := v.ActiveMonth()
	if month == 0 {
		return nil
	}
	return domain.GroupByOTPCount(domain.FilterByMonth(v.records, month))
}

func (v *TrendsView) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(v.months) == 0 {
		return nil
	}
	switch key.String() {
	case "h", "left":
		if v.active > 0 {
			v.active--
		}
		return KeyHandledCmd
	case "l", "right":
		if v.active < len(v.months)-1 {
			v.active++
		}
		return KeyHandledCmd
	}
	return nil
}

func (v *TrendsView) Render(width, height int, compact bool) string {
	cardWidth := width - 4

	if len(v.months) == 0 {
		card := components.Card{
			Title:   theme.AnimatedGradientText(i18n.T("tab_trends"), v.AnimTick),
			Width:   cardWidth,
			Compact: compact,
			Content: theme.MutedStyle.Render(i18n.T("no_months")),
		}
		return card.Render()
	}

	month := v.months[v.active]
	card := components.Card{
		Title:   theme.AnimatedGradientText(i18n.Tf("monthly_trends", month.String()), v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}
	innerW := card.InnerWidth()

	var lines []string
	lines = append(lines, v.renderMonthTabs(innerW))
	lines = append(lines, "")

	buckets := v.ActiveBuckets()
	chart := components.LineChart{
		Points:     bucketPoints(buckets),
		ThresholdX: domain.Threshold,
		Annotation: i18n.Tf("threshold_label", domain.Threshold),
		XLabel:     i18n.T("axis_x"),
		YLabel:     i18n.T("axis_y"),
		Width:      innerW,
		PlotHeight: chartHeight(height),
	}
	lines = append(lines, chart.Render()...)
	lines = append(lines, "")
	lines = append(lines, v.renderMonthStat(month))
	lines = append(lines, components.HelpFooter(i18n.T("trends_help")))

	card.Content = strings.Join(lines, "\n")
	return card.Render()
}

func (v *TrendsView) renderMonthTabs(width int) string {
	var tabs []string
	for i, m := range v.months {
		label := " " + m.String() + " "
		if i == v.active {
			tabs = append(tabs, theme.SuccessStyle.Bold(true).Render(label))
		} else {
			tabs = append(tabs, theme.MutedStyle.Render(label))
		}
	}
	return components.CenterText(strings.Join(tabs, theme.MutedStyle.Render("·")), width)
}

func (v *TrendsView) renderMonthStat(month time.Month) string {
	stat := report.AssessMonth(v.records, month)
	if !stat.HasData {
		return "  " + theme.MutedStyle.Render(i18n.T("no_data_short"))
	}
	line := i18n.Tf("month_over",
		month.String(),
		components.FormatNumber(stat.OverThreshold),
		components.FormatPercent(stat.Percent))
	return "  " + lipgloss.NewStyle().Foreground(theme.ColorBodyText).Render(line)
}

// bucketPoints maps the per-OTP-count distribution onto chart points.
func bucketPoints(buckets []domain.Bucket) []components.LinePoint {
	points := make([]components.LinePoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, components.LinePoint{X: b.OTPCount, Y: b.UserCount})
	}
	return points
}

// chartHeight fits the plot area to the terminal, leaving room for the
// card chrome, tabs and the stat footer.
func chartHeight(termHeight int) int {
	h := termHeight - 14
	if h < 6 {
		h = 6
	}
	if h > 14 {
		h = 14
	}
	return h
}
