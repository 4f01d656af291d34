package components

import (
	"strings"
	"testing"
)

func TestLineChart_Empty(t *testing.T) {
	lc := LineChart{Width: 60, PlotHeight: 8}
	out := lc.Render()
	if len(out) != 1 || !strings.Contains(out[0], "no data") {
		t.Errorf("empty chart = %q, want single no-data line", out)
	}
}

func TestLineChart_RendersAnnotationAndAxis(t *testing.T) {
	lc := LineChart{
		Points: []LinePoint{
			{X: 1, Y: 40}, {X: 5, Y: 18}, {X: 16, Y: 3}, {X: 30, Y: 1},
		},
		ThresholdX: 16,
		Annotation: "Current Threshold: 16 OTPs",
		Width:      72,
		PlotHeight: 9,
	}
	out := strings.Join(lc.Render(), "\n")
	if !strings.Contains(out, "Current Threshold: 16 OTPs") {
		t.Error("expected threshold annotation")
	}
	if !strings.Contains(out, "└") {
		t.Error("expected x-axis origin")
	}
	if !strings.Contains(out, "30") {
		t.Error("expected max x tick label")
	}
	if !strings.Contains(out, "16") {
		t.Error("expected threshold tick label")
	}
}

func TestLineChart_SinglePoint(t *testing.T) {
	lc := LineChart{
		Points:     []LinePoint{{X: 3, Y: 12}},
		ThresholdX: 16,
		Width:      60,
		PlotHeight: 8,
	}
	out := lc.Render()
	if len(out) < 8 {
		t.Fatalf("expected full plot block, got %d lines", len(out))
	}
	for _, line := range out {
		if strings.Contains(line, "no data") {
			t.Error("single point should still plot")
		}
	}
}

func TestLineChart_ZeroCounts(t *testing.T) {
	lc := LineChart{
		Points:     []LinePoint{{X: 0, Y: 0}, {X: 2, Y: 0}},
		ThresholdX: 16,
		Width:      60,
		PlotHeight: 6,
	}
	// must not panic on an all-zero series
	if out := lc.Render(); len(out) == 0 {
		t.Fatal("expected rendered output")
	}
}

func TestLogScale(t *testing.T) {
	if got := logScale(0, 100); got != 0 {
		t.Errorf("logScale(0, 100) = %v, want 0", got)
	}
	if got := logScale(100, 100); got != 1 {
		t.Errorf("logScale(100, 100) = %v, want 1", got)
	}
	mid := logScale(10, 100)
	if mid <= 0 || mid >= 1 {
		t.Errorf("logScale(10, 100) = %v, want within (0, 1)", mid)
	}
}
