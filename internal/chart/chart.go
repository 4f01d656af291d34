// Package chart renders a month's OTP trend to a PNG so the analyst
// gets a file artifact alongside the terminal view.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/anu6598/otp-breach/internal/domain"
)

// ErrEmptySeries is returned when a month has no OTP-count buckets to
// plot. Callers render a zero-state instead of a broken image.
var ErrEmptySeries = errors.New("chart: empty series")

const (
	renderWidth  = 1024
	renderHeight = 576
)

// Render draws the monthly trend chart as PNG: user count by OTP count
// on a logarithmic Y axis, with a vertical rule at the threshold
// spanning up to the series maximum and an annotation labeling it.
func Render(w io.Writer, month time.Month, buckets []domain.Bucket) error {
	if len(buckets) == 0 {
		return ErrEmptySeries
	}

	xs := make([]float64, len(buckets))
	ys := make([]float64, len(buckets))
	minX, maxX := float64(buckets[0].OTPCount), float64(buckets[0].OTPCount)
	for i, b := range buckets {
		xs[i] = float64(b.OTPCount)
		y := float64(b.UserCount)
		if y < 1 {
			y = 1 // log axis cannot place zero
		}
		ys[i] = y
		if xs[i] < minX {
			minX = xs[i]
		}
		if xs[i] > maxX {
			maxX = xs[i]
		}
	}
	maxY, _ := domain.MaxUserCount(buckets)
	yTop := float64(maxY)
	if yTop < 1 {
		yTop = 1
	}

	// Explicit X range keeps the threshold rule visible and avoids the
	// zero-width range a single-bucket month would otherwise produce.
	lo, hi := minX, maxX
	if lo > domain.Threshold {
		lo = domain.Threshold
	}
	if hi < domain.Threshold {
		hi = domain.Threshold
	}
	lo, hi = lo-1, hi+1

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    month.String(),
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: 3,
				StrokeColor: drawing.Color{R: 0x86, G: 0xba, B: 0xda, A: 0xff},
				DotWidth:    4,
				DotColor:    drawing.Color{R: 0x86, G: 0xba, B: 0xda, A: 0xff},
			},
		},
		chart.ContinuousSeries{
			XValues: []float64{domain.Threshold, domain.Threshold},
			YValues: []float64{1, yTop},
			Style: chart.Style{
				StrokeWidth:     2,
				StrokeColor:     chart.ColorRed,
				StrokeDashArray: []float64{5, 5},
			},
		},
		chart.AnnotationSeries{
			Annotations: []chart.Value2{
				{
					XValue: domain.Threshold,
					YValue: yTop,
					Label:  fmt.Sprintf("Current Threshold: %d OTPs", domain.Threshold),
				},
			},
		},
	}

	ch := chart.Chart{
		Title:      fmt.Sprintf("OTP Request Trends - %s", month),
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 12}},
		Width:      renderWidth,
		Height:     renderHeight,
		XAxis: chart.XAxis{
			Name:  "OTP Count",
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		YAxis: chart.YAxis{
			Name:  "User Count (Log Scale)",
			Range: &chart.LogarithmicRange{},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(chart.PNG, w)
}

// WriteFile renders the month chart into dir and returns the path.
func WriteFile(dir string, month time.Month, buckets []domain.Bucket) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("otp_trend_%s.png", month))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := Render(f, month, buckets); err != nil {
		return "", fmt.Errorf("render %s chart: %w", month, err)
	}
	return path, nil
}
