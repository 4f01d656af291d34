package domain

import "sort"

// Bucket is the set of users who requested exactly OTPCount OTPs within
// the grouped records.
type Bucket struct {
	OTPCount  int
	UserCount int

	// Share is the bucket's percentage of the grand total user count.
	// Populated by SummaryShares, zero otherwise.
	Share float64
}

// GroupByOTPCount groups records by OTP count, summing user counts,
// and returns the buckets sorted by OTP count ascending.
func GroupByOTPCount(records []Record) []Bucket {
	sums := make(map[int]int, len(records))
	for _, r := range records {
		sums[r.OTPCount] += r.UserCount
	}

	buckets := make([]Bucket, 0, len(sums))
	for count, users := range sums {
		buckets = append(buckets, Bucket{OTPCount: count, UserCount: users})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].OTPCount < buckets[j].OTPCount
	})
	return buckets
}

// SummaryShares computes each bucket's percentage share of the total
// user count. Safe on an empty slice and on an all-zero total.
func SummaryShares(buckets []Bucket) []Bucket {
	total := 0
	for _, b := range buckets {
		total += b.UserCount
	}
	if total == 0 {
		return buckets
	}
	out := make([]Bucket, len(buckets))
	for i, b := range buckets {
		b.Share = float64(b.UserCount) / float64(total) * 100
		out[i] = b
	}
	return out
}

// MaxUserCount returns the largest summed user count across buckets.
// ok is false on an empty slice; callers must not assume a maximum
// exists for an empty month group.
func MaxUserCount(buckets []Bucket) (max int, ok bool) {
	if len(buckets) == 0 {
		return 0, false
	}
	for _, b := range buckets {
		if b.UserCount > max {
			max = b.UserCount
		}
	}
	return max, true
}
