// Package export serializes a filtered dataset back to delimited text
// so the analyst can take the extract elsewhere.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/anu6598/otp-breach/internal/domain"
)

// Fixed download contract.
const (
	FileName = "filtered_otp_data.csv"
	MIMEType = "text/csv"
)

// Write serializes records as CSV: the three source columns, the
// derived calendar columns, then any passthrough columns (named by
// extraColumns, matching Record.Extra order).
func Write(w io.Writer, records []domain.Record, extraColumns []string) error {
	cw := csv.NewWriter(w)

	header := []string{"event_date", "otp_count", "user_count", "month", "month_name", "year"}
	header = append(header, extraColumns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range records {
		row := []string{
			r.EventDate.Format("2006-01-02"),
			strconv.Itoa(r.OTPCount),
			strconv.Itoa(r.UserCount),
			strconv.Itoa(int(r.Month)),
			r.MonthName,
			strconv.Itoa(r.Year),
		}
		row = append(row, r.Extra...)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the extract to dir/FileName and returns the path.
func WriteFile(dir string, records []domain.Record, extraColumns []string) (string, error) {
	path := filepath.Join(dir, FileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}
	defer f.Close()

	if err := Write(f, records, extraColumns); err != nil {
		return "", err
	}
	return path, nil
}
