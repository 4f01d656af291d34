package domain

import "time"

// Record is one row of the OTP request dataset: on EventDate, UserCount
// users each made exactly OTPCount one-time-password requests.
type Record struct {
	EventDate time.Time
	OTPCount  int
	UserCount int

	// Derived at load time from EventDate.
	Month     time.Month
	MonthName string
	Year      int

	// Extra holds passthrough values for columns beyond the known three,
	// in input column order.
	Extra []string
}

// Derive fills the calendar fields from EventDate.
func (r *Record) Derive() {
	r.Month = r.EventDate.Month()
	r.MonthName = r.EventDate.Month().String()
	r.Year = r.EventDate.Year()
}

// Bounds returns the minimum and maximum event dates in the dataset.
// ok is false when the dataset is empty.
func Bounds(records []Record) (min, max time.Time, ok bool) {
	if len(records) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = records[0].EventDate, records[0].EventDate
	for _, r := range records[1:] {
		if r.EventDate.Before(min) {
			min = r.EventDate
		}
		if r.EventDate.After(max) {
			max = r.EventDate
		}
	}
	return min, max, true
}
