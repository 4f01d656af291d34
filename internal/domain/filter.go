package domain

import "time"

// FilterByDateRange returns records with start <= EventDate <= end.
// Both boundaries are inclusive. Zero start/end mean no constraint on
// that boundary. The input is never mutated; order is preserved.
// An empty result is valid and must be tolerated by all consumers.
func FilterByDateRange(records []Record, start, end time.Time) []Record {
	if start.IsZero() && end.IsZero() {
		return records
	}

	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if !start.IsZero() && r.EventDate.Before(start) {
			continue
		}
		if !end.IsZero() && r.EventDate.After(end) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// FilterByMonth returns records whose event date falls in the given
// calendar month, regardless of year.
func FilterByMonth(records []Record, month time.Month) []Record {
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Month == month {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ClampRange constrains [start, end] to the dataset bounds [min, max].
// Zero values snap to the corresponding bound. An inverted range is
// collapsed onto its start.
func ClampRange(start, end, min, max time.Time) (time.Time, time.Time) {
	if start.IsZero() || start.Before(min) {
		start = min
	}
	if end.IsZero() || end.After(max) {
		end = max
	}
	if start.After(max) {
		start = max
	}
	if end.Before(min) {
		end = min
	}
	if end.Before(start) {
		end = start
	}
	return start, end
}
