package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/anu6598/otp-breach/internal/domain"
)

// Required column names. Extra columns are passed through untouched.
const (
	colEventDate = "event_date"
	colOTPCount  = "otp_count"
	colUserCount = "user_count"
)

// dateLayouts are tried in order when parsing event_date values.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
}

// Dataset is the parsed dataset plus the names of any passthrough
// columns, in input order.
type Dataset struct {
	Records      []domain.Record
	ExtraColumns []string
}

// ParseReader decodes the CSV dataset from r. The header row is
// required. Any parse failure is fatal to the load: a dashboard over
// silently dropped rows would lie to the analyst.
func ParseReader(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input: header row required")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	dateIdx, otpIdx, userIdx := -1, -1, -1
	var extraCols []string
	var extraIdx []int
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case colEventDate:
			dateIdx = i
		case colOTPCount:
			otpIdx = i
		case colUserCount:
			userIdx = i
		default:
			extraCols = append(extraCols, strings.TrimSpace(name))
			extraIdx = append(extraIdx, i)
		}
	}
	for _, c := range []struct {
		idx  int
		name string
	}{{dateIdx, colEventDate}, {otpIdx, colOTPCount}, {userIdx, colUserCount}} {
		if c.idx < 0 {
			return nil, fmt.Errorf("missing required column %q", c.name)
		}
	}

	ds := &Dataset{ExtraColumns: extraCols}
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		eventDate, err := parseDate(row[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		otpCount, err := parseCount(colOTPCount, row[otpIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		userCount, err := parseCount(colUserCount, row[userIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec := domain.Record{
			EventDate: eventDate,
			OTPCount:  otpCount,
			UserCount: userCount,
		}
		for _, i := range extraIdx {
			rec.Extra = append(rec.Extra, row[i])
		}
		rec.Derive()
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

// ParseFile opens and decodes the CSV dataset at path.
func ParseFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return ds, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable %s %q", colEventDate, s)
}

func parseCount(col, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", col, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative %s %d", col, n)
	}
	return n, nil
}
