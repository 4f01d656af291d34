package domain

import "time"

// Threshold is the fixed maximum OTP request count considered normal.
// Users above it are flagged as over-threshold. This is a business
// constant, not a tunable.
const Threshold = 16

// SeasonMonths is the canonical month ordering for the trend tabs.
// Months outside this list are silently excluded from trend rendering
// even when present in the data; see DESIGN.md for the scope note.
var SeasonMonths = []time.Month{
	time.April,
	time.May,
	time.June,
	time.July,
	time.August,
}

// Metrics holds the headline numbers for a filtered dataset.
type Metrics struct {
	TotalUsers           int
	UsersOverThreshold   int
	PercentOverThreshold float64
	MaxOTPCount          int

	// HasData is false when the filtered set was empty. Percent and max
	// are zero in that case rather than NaN or a crash.
	HasData bool
}

// ComputeMetrics aggregates the filtered records against Threshold.
func ComputeMetrics(records []Record) Metrics {
	var m Metrics
	if len(records) == 0 {
		return m
	}
	m.HasData = true
	for _, r := range records {
		m.TotalUsers += r.UserCount
		if r.OTPCount > Threshold {
			m.UsersOverThreshold += r.UserCount
		}
		if r.OTPCount > m.MaxOTPCount {
			m.MaxOTPCount = r.OTPCount
		}
	}
	if m.TotalUsers > 0 {
		m.PercentOverThreshold = float64(m.UsersOverThreshold) / float64(m.TotalUsers) * 100
	}
	return m
}

// MonthsInRange returns the members of SeasonMonths present in the
// records, in canonical order.
func MonthsInRange(records []Record) []time.Month {
	present := make(map[time.Month]bool, len(records))
	for _, r := range records {
		present[r.Month] = true
	}
	var months []time.Month
	for _, m := range SeasonMonths {
		if present[m] {
			months = append(months, m)
		}
	}
	return months
}
