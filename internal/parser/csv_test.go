package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleCSV = `event_date,otp_count,user_count
2024-04-01,10,100
2024-04-01,20,5
2024-05-15,3,250
`

func TestParseReader(t *testing.T) {
	ds, err := ParseReader(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(ds.Records))
	}

	first := ds.Records[0]
	if first.OTPCount != 10 || first.UserCount != 100 {
		t.Errorf("first record = %+v, want otp=10 users=100", first)
	}
	if first.Month != time.April || first.MonthName != "April" || first.Year != 2024 {
		t.Errorf("derived fields = %v/%s/%d, want April/April/2024",
			first.Month, first.MonthName, first.Year)
	}
	if ds.Records[2].Month != time.May {
		t.Errorf("third record month = %v, want May", ds.Records[2].Month)
	}
}

func TestParseReader_ColumnOrderIndependent(t *testing.T) {
	input := "user_count,event_date,otp_count\n7,2024-06-02,4\n"
	ds, err := ParseReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := ds.Records[0]
	if r.OTPCount != 4 || r.UserCount != 7 {
		t.Errorf("got otp=%d users=%d, want otp=4 users=7", r.OTPCount, r.UserCount)
	}
}

func TestParseReader_ExtraColumnsPassThrough(t *testing.T) {
	input := "event_date,region,otp_count,user_count,channel\n2024-04-01,eu,2,9,sms\n"
	ds, err := ParseReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.ExtraColumns) != 2 || ds.ExtraColumns[0] != "region" || ds.ExtraColumns[1] != "channel" {
		t.Fatalf("ExtraColumns = %v, want [region channel]", ds.ExtraColumns)
	}
	if len(ds.Records[0].Extra) != 2 || ds.Records[0].Extra[0] != "eu" || ds.Records[0].Extra[1] != "sms" {
		t.Errorf("Extra = %v, want [eu sms]", ds.Records[0].Extra)
	}
}

func TestParseReader_DateLayouts(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{"iso", "2024-04-01"},
		{"rfc3339", "2024-04-01T00:00:00Z"},
		{"datetime", "2024-04-01 12:30:00"},
		{"slashes", "2024/04/01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "event_date,otp_count,user_count\n" + tt.date + ",1,1\n"
			ds, err := ParseReader(strings.NewReader(input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ds.Records[0].Month != time.April {
				t.Errorf("month = %v, want April", ds.Records[0].Month)
			}
		})
	}
}

func TestParseReader_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing column", "event_date,otp_count\n2024-04-01,1\n"},
		{"bad date", "event_date,otp_count,user_count\nnot-a-date,1,1\n"},
		{"bad otp count", "event_date,otp_count,user_count\n2024-04-01,many,1\n"},
		{"negative user count", "event_date,otp_count,user_count\n2024-04-01,1,-5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseReader(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseReader_HeaderOnly(t *testing.T) {
	ds, err := ParseReader(strings.NewReader("event_date,otp_count,user_count\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Records) != 0 {
		t.Errorf("got %d records, want 0", len(ds.Records))
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "otp.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}

	ds, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Records) != 3 {
		t.Errorf("got %d records, want 3", len(ds.Records))
	}
}

func TestParseFile_Missing(t *testing.T) {
	if _, err := ParseFile("/nonexistent/otp.csv"); err == nil {
		t.Error("expected error for missing file")
	}
}
