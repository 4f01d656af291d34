// Package report turns computed metrics into the analyst-facing
// threshold-adequacy commentary, independent of any render surface.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/anu6598/otp-breach/internal/domain"
)

// AdequacyCutoff is the over-threshold percentage above which the
// current OTP threshold is judged potentially too restrictive.
const AdequacyCutoff = 0.5

type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityWarning
)

// Assessment is the narrative verdict for a filtered date range.
type Assessment struct {
	Start    time.Time
	End      time.Time
	Metrics  domain.Metrics
	Judgment string
	Severity Severity
}

// Assess judges the threshold against the filtered metrics.
func Assess(m domain.Metrics, start, end time.Time) Assessment {
	a := Assessment{Start: start, End: end, Metrics: m}
	if m.PercentOverThreshold < AdequacyCutoff {
		a.Judgment = "appropriate"
		a.Severity = SeveritySuccess
	} else {
		a.Judgment = "potentially too restrictive"
		a.Severity = SeverityWarning
	}
	return a
}

// PercentDisplay renders the over-threshold percentage with two
// decimals, or "N/A" when the filtered set was empty.
func (a Assessment) PercentDisplay() string {
	if !a.Metrics.HasData {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", a.Metrics.PercentOverThreshold)
}

// Narrative returns the threshold analysis paragraph.
func (a Assessment) Narrative() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Based on the data from %s to %s:\n",
		a.Start.Format("2006-01-02"), a.End.Format("2006-01-02"))
	if !a.Metrics.HasData {
		sb.WriteString("No OTP requests fall within the selected date range.")
		return sb.String()
	}
	fmt.Fprintf(&sb, "- %s of users exceeded the current threshold of %d OTPs\n",
		a.PercentDisplay(), domain.Threshold)
	fmt.Fprintf(&sb, "- The maximum number of OTPs requested by a single user was %d\n",
		a.Metrics.MaxOTPCount)
	fmt.Fprintf(&sb, "- The current threshold appears to be %s for most users", a.Judgment)
	return sb.String()
}

// Banner returns the one-line success or warning message.
func (a Assessment) Banner() string {
	if !a.Metrics.HasData {
		return "No data in the selected range; nothing to assess."
	}
	if a.Severity == SeveritySuccess {
		return fmt.Sprintf("The current threshold of %d OTPs appears sufficient for most use cases.",
			domain.Threshold)
	}
	return "Consider reviewing the threshold as a significant portion of users are exceeding it."
}

// MonthStat is the per-month over-threshold summary shown under each
// trend chart.
type MonthStat struct {
	Month         time.Month
	OverThreshold int
	Percent       float64
	HasData       bool
}

// AssessMonth computes the over-threshold stat for one month of the
// filtered records.
func AssessMonth(records []domain.Record, month time.Month) MonthStat {
	m := domain.ComputeMetrics(domain.FilterByMonth(records, month))
	return MonthStat{
		Month:         month,
		OverThreshold: m.UsersOverThreshold,
		Percent:       m.PercentOverThreshold,
		HasData:       m.HasData,
	}
}

// String renders the stat in the "1,234 (5.67%)" style used below the
// charts. Formatting of the count is left to the caller's locale
// helpers; this keeps the plain form.
func (s MonthStat) String() string {
	if !s.HasData {
		return fmt.Sprintf("%s - no data", s.Month)
	}
	return fmt.Sprintf("%s - Users Over Threshold: %d (%.2f%%)", s.Month, s.OverThreshold, s.Percent)
}
