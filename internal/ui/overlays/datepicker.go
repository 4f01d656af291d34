package overlays

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anu6598/otp-breach/internal/domain"
	"github.com/anu6598/otp-breach/internal/i18n"
	"github.com/anu6598/otp-breach/internal/theme"
)

// RangeAppliedMsg signals that the picker closed with a new date range.
type RangeAppliedMsg struct {
	Start time.Time
	End   time.Time
}

// DatePickerOverlay edits the inclusive start/end filter dates, clamped
// to the dataset bounds.
type DatePickerOverlay struct {
	start   time.Time
	end     time.Time
	minDate time.Time
	maxDate time.Time

	cursor   int // 0 = start field, 1 = end field
	animTick uint
}

func NewDatePickerOverlay(start, end, minDate, maxDate time.Time) *DatePickerOverlay {
	start, end = domain.ClampRange(start, end, minDate, maxDate)
	return &DatePickerOverlay{
		start:   start,
		end:     end,
		minDate: minDate,
		maxDate: maxDate,
	}
}

func (d *DatePickerOverlay) SetAnimTick(tick uint) {
	d.animTick = tick
}

// Update handles picker keys. Returns true when the overlay closed; the
// cmd then carries the applied range.
func (d *DatePickerOverlay) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		d.cursor = 1
	case "k", "up":
		d.cursor = 0
	case "h", "left":
		d.shift(-1)
	case "l", "right":
		d.shift(1)
	case "H":
		d.shift(-7)
	case "L":
		d.shift(7)
	case "0":
		d.start, d.end = d.minDate, d.maxDate
	case "esc", "enter", "t":
		start, end := d.start, d.end
		return true, func() tea.Msg { return RangeAppliedMsg{Start: start, End: end} }
	}
	return false, nil
}

// shift moves the field under the cursor by days, keeping the range
// ordered and inside the dataset bounds.
func (d *DatePickerOverlay) shift(days int) {
	delta := time.Duration(days) * 24 * time.Hour
	if d.cursor == 0 {
		d.start = d.start.Add(delta)
		if d.start.After(d.end) {
			d.start = d.end
		}
	} else {
		d.end = d.end.Add(delta)
		if d.end.Before(d.start) {
			d.end = d.start
		}
	}
	d.start, d.end = domain.ClampRange(d.start, d.end, d.minDate, d.maxDate)
}

func (d *DatePickerOverlay) Render(width, height int) string {
	bg := theme.ColorCardBg
	title := theme.AnimatedGradientText(i18n.T("date_range"), d.animTick, bg)

	fields := []struct {
		label string
		value time.Time
	}{
		{i18n.T("range_start"), d.start},
		{i18n.T("range_end"), d.end},
	}

	var rows []string
	for i, f := range fields {
		labelStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)
		valueStyle := lipgloss.NewStyle().Foreground(theme.ColorSkyBlue).Background(bg)

		arrow := "  "
		if i == d.cursor {
			arrow = lipgloss.NewStyle().Foreground(theme.ColorAmber).Background(bg).Render("> ")
			labelStyle = lipgloss.NewStyle().Foreground(theme.ColorAmber).Bold(true).Background(bg)
			valueStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true).Background(bg)
		}

		label := fmt.Sprintf("%-12s", f.label)
		rows = append(rows, fmt.Sprintf("  %s%s%s",
			arrow,
			labelStyle.Render(label),
			valueStyle.Render(" "+f.value.Format("2006-01-02")),
		))
	}

	bounds := lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(
		fmt.Sprintf("  %s", i18n.Tf("active_range",
			d.minDate.Format("2006-01-02"), d.maxDate.Format("2006-01-02"))))

	content := title + "\n\n" + strings.Join(rows, "\n") + "\n" + bounds + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(i18n.T("range_help"))

	boxWidth := 52
	if width < 56 {
		boxWidth = width - 4
	}

	return theme.CardStyle.
		Width(boxWidth).
		Render(content)
}
