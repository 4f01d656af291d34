package chart

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/anu6598/otp-breach/internal/domain"
)

func TestRender(t *testing.T) {
	buckets := []domain.Bucket{
		{OTPCount: 1, UserCount: 5000},
		{OTPCount: 10, UserCount: 120},
		{OTPCount: 20, UserCount: 3},
	}

	var buf bytes.Buffer
	if err := Render(&buf, time.April, buckets); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// PNG magic bytes.
	png := []byte{0x89, 'P', 'N', 'G'}
	if buf.Len() < len(png) || !bytes.Equal(buf.Bytes()[:4], png) {
		t.Error("output is not a PNG")
	}
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, time.June, nil)
	if !errors.Is(err, ErrEmptySeries) {
		t.Errorf("err = %v, want ErrEmptySeries", err)
	}
}

func TestRender_SingleBucket(t *testing.T) {
	// One point still renders, with the threshold rule drawn using that
	// bucket's user count as the vertical extent.
	var buf bytes.Buffer
	err := Render(&buf, time.July, []domain.Bucket{{OTPCount: 8, UserCount: 42}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty output for single-bucket series")
	}
}

func TestRender_ZeroUserCount(t *testing.T) {
	// A zero bucket must not break the logarithmic axis.
	var buf bytes.Buffer
	err := Render(&buf, time.May, []domain.Bucket{
		{OTPCount: 2, UserCount: 0},
		{OTPCount: 5, UserCount: 10},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFile(dir, time.August, []domain.Bucket{
		{OTPCount: 1, UserCount: 10},
		{OTPCount: 17, UserCount: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}
