package domain

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFilterByDateRange(t *testing.T) {
	records := []Record{
		rec("2024-04-10", 1, 10),
		rec("2024-04-12", 2, 20),
		rec("2024-04-15", 3, 30),
		rec("2024-05-18", 4, 40),
		rec("2024-05-22", 5, 50),
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"no constraint", "", "", 5},
		{"start only", "2024-04-14", "", 3},
		{"end only", "", "2024-04-16", 3},
		{"both", "2024-04-12", "2024-05-18", 3},
		{"exact day", "2024-04-12", "2024-04-12", 1},
		{"excludes all", "2024-06-01", "2024-06-30", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var start, end time.Time
			if tt.start != "" {
				start = date(tt.start)
			}
			if tt.end != "" {
				end = date(tt.end)
			}
			result := FilterByDateRange(records, start, end)
			if len(result) != tt.want {
				t.Errorf("got %d records, want %d", len(result), tt.want)
			}
		})
	}
}

func TestFilterByDateRange_FullRangeIsIdentity(t *testing.T) {
	records := []Record{
		rec("2024-04-10", 1, 10),
		rec("2024-05-18", 4, 40),
		rec("2024-04-12", 2, 20),
	}
	min, max, ok := Bounds(records)
	if !ok {
		t.Fatal("Bounds failed on non-empty records")
	}

	result := FilterByDateRange(records, min, max)
	if len(result) != len(records) {
		t.Fatalf("got %d records, want %d", len(result), len(records))
	}
	// Row-for-row, order preserved.
	for i := range records {
		if !result[i].EventDate.Equal(records[i].EventDate) || result[i].OTPCount != records[i].OTPCount {
			t.Errorf("row %d changed: got %+v, want %+v", i, result[i], records[i])
		}
	}
}

func TestFilterByDateRange_Idempotent(t *testing.T) {
	records := []Record{
		rec("2024-04-10", 1, 10),
		rec("2024-04-15", 3, 30),
		rec("2024-05-22", 5, 50),
	}
	start, end := date("2024-04-11"), date("2024-05-01")

	once := FilterByDateRange(records, start, end)
	twice := FilterByDateRange(once, start, end)

	if len(once) != len(twice) {
		t.Fatalf("second filter changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if !once[i].EventDate.Equal(twice[i].EventDate) {
			t.Errorf("row %d differs after refilter", i)
		}
	}
}

func TestFilterByMonth(t *testing.T) {
	records := []Record{
		rec("2024-04-10", 1, 10),
		rec("2024-05-18", 4, 40),
		rec("2023-04-02", 9, 90),
	}
	april := FilterByMonth(records, time.April)
	if len(april) != 2 {
		t.Errorf("got %d April records, want 2 (both years)", len(april))
	}
	if got := FilterByMonth(records, time.December); len(got) != 0 {
		t.Errorf("got %d December records, want 0", len(got))
	}
}

func TestBounds_Empty(t *testing.T) {
	if _, _, ok := Bounds(nil); ok {
		t.Error("ok = true for empty dataset")
	}
}

func TestClampRange(t *testing.T) {
	min, max := date("2024-04-01"), date("2024-08-31")

	tests := []struct {
		name       string
		start, end time.Time
		wantStart  time.Time
		wantEnd    time.Time
	}{
		{"zero values snap to bounds", time.Time{}, time.Time{}, min, max},
		{"before min clamps", date("2023-01-01"), date("2024-05-01"), min, date("2024-05-01")},
		{"after max clamps", date("2024-05-01"), date("2025-01-01"), date("2024-05-01"), max},
		{"inverted collapses", date("2024-06-01"), date("2024-05-01"), date("2024-06-01"), date("2024-06-01")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := ClampRange(tt.start, tt.end, min, max)
			if !s.Equal(tt.wantStart) || !e.Equal(tt.wantEnd) {
				t.Errorf("got [%s, %s], want [%s, %s]",
					s.Format("2006-01-02"), e.Format("2006-01-02"),
					tt.wantStart.Format("2006-01-02"), tt.wantEnd.Format("2006-01-02"))
			}
		})
	}
}
