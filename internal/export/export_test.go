package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/anu6598/otp-breach/internal/domain"
	"github.com/anu6598/otp-breach/internal/parser"
)

func rec(dateStr string, otpCount, userCount int, extra ...string) domain.Record {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		panic(err)
	}
	r := domain.Record{EventDate: t, OTPCount: otpCount, UserCount: userCount, Extra: extra}
	r.Derive()
	return r
}

func TestWrite_RoundTrip(t *testing.T) {
	records := []domain.Record{
		rec("2024-04-01", 10, 100, "eu"),
		rec("2024-04-01", 20, 5, "us"),
		rec("2024-05-15", 3, 250, "eu"),
	}

	var buf bytes.Buffer
	if err := Write(&buf, records, []string{"region"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Re-parsing the export must reproduce rows and derived values.
	ds, err := parser.ParseReader(&buf)
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if len(ds.Records) != len(records) {
		t.Fatalf("got %d records, want %d", len(ds.Records), len(records))
	}
	for i, got := range ds.Records {
		want := records[i]
		if !got.EventDate.Equal(want.EventDate) {
			t.Errorf("row %d date = %s, want %s", i, got.EventDate, want.EventDate)
		}
		if got.OTPCount != want.OTPCount || got.UserCount != want.UserCount {
			t.Errorf("row %d counts = %d/%d, want %d/%d",
				i, got.OTPCount, got.UserCount, want.OTPCount, want.UserCount)
		}
		if got.Month != want.Month || got.MonthName != want.MonthName || got.Year != want.Year {
			t.Errorf("row %d derived = %v/%s/%d, want %v/%s/%d",
				i, got.Month, got.MonthName, got.Year, want.Month, want.MonthName, want.Year)
		}
	}
}

func TestWrite_Header(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, []string{"region", "channel"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstLine := strings.SplitN(buf.String(), "\n", 2)[0]
	want := "event_date,otp_count,user_count,month,month_name,year,region,channel"
	if firstLine != want {
		t.Errorf("header = %q, want %q", firstLine, want)
	}
}

func TestWrite_DerivedColumns(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []domain.Record{rec("2024-07-04", 8, 42)}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[1] != "2024-07-04,8,42,7,July,2024" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFile(dir, []domain.Record{rec("2024-04-01", 1, 1)}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != FileName {
		t.Errorf("file name = %s, want %s", filepath.Base(path), FileName)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("export file missing: %v", err)
	}
}

func TestWrite_EmptyRecords(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("got %d lines, want header only", len(lines))
	}
}
