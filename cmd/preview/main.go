package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/anu6598/otp-breach/internal/domain"
	"github.com/anu6598/otp-breach/internal/ui/views"
)

// Render harness for eyeballing the views without a live dataset.
func main() {
	records := syntheticRecords()

	mv := views.NewMetricsView()
	mv.SetData(records)
	fmt.Println(mv.Render(100, 40, false))
	fmt.Println()

	tv := views.NewTrendsView()
	tv.SetData(records)
	fmt.Println(tv.Render(100, 40, false))
	fmt.Println()

	start, _ := time.Parse("2006-01-02", "2024-04-01")
	end, _ := time.Parse("2006-01-02", "2024-08-31")
	sv := views.NewSummaryView()
	sv.SetData(records, start, end)
	fmt.Println(sv.Render(100, 40, false))
}

// syntheticRecords builds a season of daily rows with a long-tailed
// OTP count distribution, a few of them past the threshold.
func syntheticRecords() []domain.Record {
	rng := rand.New(rand.NewSource(7))
	start, _ := time.Parse("2006-01-02", "2024-04-01")

	var records []domain.Record
	for day := 0; day < 150; day++ {
		date := start.AddDate(0, 0, day)
		for _, otpCount := range []int{1, 2, 3, 5, 8, 12, 17, 25} {
			users := rng.Intn(200/otpCount) + 1
			r := domain.Record{
				EventDate: date,
				OTPCount:  otpCount,
				UserCount: users,
			}
			r.Derive()
			records = append(records, r)
		}
	}
	return records
}
