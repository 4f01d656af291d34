package domain

import (
	"math"
	"testing"
)

func TestGroupByOTPCount(t *testing.T) {
	records := []Record{
		rec("2024-04-01", 10, 100),
		rec("2024-04-02", 10, 50),
		rec("2024-04-01", 20, 5),
		rec("2024-04-03", 3, 7),
	}

	buckets := GroupByOTPCount(records)

	if len(buckets) != 3 {
		t.Fatalf("got %d buckets, want 3", len(buckets))
	}
	// Sorted ascending by OTP count.
	wantCounts := []int{3, 10, 20}
	wantUsers := []int{7, 150, 5}
	for i, b := range buckets {
		if b.OTPCount != wantCounts[i] {
			t.Errorf("buckets[%d].OTPCount = %d, want %d", i, b.OTPCount, wantCounts[i])
		}
		if b.UserCount != wantUsers[i] {
			t.Errorf("buckets[%d].UserCount = %d, want %d", i, b.UserCount, wantUsers[i])
		}
	}
}

func TestGroupByOTPCount_Empty(t *testing.T) {
	if buckets := GroupByOTPCount(nil); len(buckets) != 0 {
		t.Errorf("got %d buckets, want 0", len(buckets))
	}
}

func TestSummaryShares(t *testing.T) {
	buckets := []Bucket{
		{OTPCount: 1, UserCount: 75},
		{OTPCount: 2, UserCount: 25},
	}

	shared := SummaryShares(buckets)

	if shared[0].Share != 75.0 {
		t.Errorf("bucket 1 share = %f, want 75.0", shared[0].Share)
	}
	if shared[1].Share != 25.0 {
		t.Errorf("bucket 2 share = %f, want 25.0", shared[1].Share)
	}

	sum := 0.0
	for _, b := range shared {
		sum += b.Share
	}
	if math.Abs(sum-100) > 0.001 {
		t.Errorf("shares sum to %f, want ~100", sum)
	}
}

func TestSummaryShares_ZeroTotal(t *testing.T) {
	buckets := []Bucket{{OTPCount: 1, UserCount: 0}}
	shared := SummaryShares(buckets)
	if shared[0].Share != 0 {
		t.Errorf("share = %f, want 0 for zero total", shared[0].Share)
	}
}

func TestMaxUserCount(t *testing.T) {
	buckets := []Bucket{
		{OTPCount: 1, UserCount: 10},
		{OTPCount: 2, UserCount: 300},
		{OTPCount: 3, UserCount: 40},
	}
	max, ok := MaxUserCount(buckets)
	if !ok {
		t.Fatal("ok = false for non-empty buckets")
	}
	if max != 300 {
		t.Errorf("max = %d, want 300", max)
	}
}

func TestMaxUserCount_Empty(t *testing.T) {
	// The original logic crashed on max() over an empty month group.
	// Here the absence of a maximum is explicit.
	if _, ok := MaxUserCount(nil); ok {
		t.Error("ok = true for empty buckets")
	}
}

func TestGroupByOTPCount_SingleBucket(t *testing.T) {
	records := []Record{rec("2024-07-04", 8, 42)}
	buckets := GroupByOTPCount(records)
	if len(buckets) != 1 {
		t.Fatalf("got %d buckets, want 1", len(buckets))
	}
	if max, ok := MaxUserCount(buckets); !ok || max != 42 {
		t.Errorf("max = %d ok = %v, want 42 true", max, ok)
	}
}
