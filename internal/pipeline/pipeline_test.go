package pipeline

import (
	"errors"
	"math"
	"testing"
	"time"

	"VelocityWatch/internal/model"
)

func buildSeries(closes []float64) *model.PriceSeries {
	start := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = model.PricePoint{Date: start.AddDate(0, 0, i), Close: c}
	}
	return &model.PriceSeries{Symbol: "TEST", Points: points}
}

func constantCloses(n int, price float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = price
	}
	return closes
}

func TestRun_InsufficientHistory(t *testing.T) {
	// 1199 points: no record ever reaches the 1200-day window.
	_, err := Run(buildSeries(constantCloses(1199, 100)))
	if err == nil {
		t.Fatal("expected error for short series")
	}
	if !errors.Is(err, ErrInsufficientHistory) {
		t.Errorf("expected ErrInsufficientHistory, got: %v", err)
	}
}

func TestRun_ConstantSeries(t *testing.T) {
	report, err := Run(buildSeries(constantCloses(1201, 100)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Records) != 1 {
		t.Fatalf("expected exactly 1 surviving record, got %d", len(report.Records))
	}
	if report.Latest.Velocity != 0 {
		t.Errorf("constant prices should give zero velocity, got %v", report.Latest.Velocity)
	}
	if report.Zone.Label != model.ZoneRetreat.Label {
		t.Errorf("zero velocity should classify as %q, got %q", model.ZoneRetreat.Label, report.Zone.Label)
	}
}

func TestRun_KnownGrowthRates(t *testing.T) {
	closes := constantCloses(1201, 100)
	closes[720] = 250
	closes[960] = 200
	closes[1200] = 300

	report, err := Run(buildSeries(closes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	latest := report.Latest

	if math.Abs(latest.Growth240-50) > 1e-9 {
		t.Errorf("Growth240: expected 50, got %.6f", latest.Growth240)
	}
	if math.Abs(latest.Growth480-20) > 1e-9 {
		t.Errorf("Growth480: expected 20, got %.6f", latest.Growth480)
	}
	if math.Abs(latest.Growth1200-200) > 1e-9 {
		t.Errorf("Growth1200: expected 200, got %.6f", latest.Growth1200)
	}
	if math.Abs(latest.Velocity-90) > 1e-9 {
		t.Errorf("Velocity: expected 90, got %.6f", latest.Velocity)
	}
	if report.Zone.Label != model.ZoneNormal.Label {
		t.Errorf("velocity 90 should classify as %q, got %q", model.ZoneNormal.Label, report.Zone.Label)
	}
}

func TestRun_Deterministic(t *testing.T) {
	closes := make([]float64, 1300)
	for i := range closes {
		closes[i] = 100 + float64(i)*0.05
	}
	series := buildSeries(closes)

	first, err := Run(series)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := Run(series)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if len(first.Records) != len(second.Records) {
		t.Fatalf("record counts differ: %d vs %d", len(first.Records), len(second.Records))
	}
	if first.Latest.Velocity != second.Latest.Velocity {
		t.Errorf("velocities differ: %v vs %v", first.Latest.Velocity, second.Latest.Velocity)
	}
	if first.Zone != second.Zone {
		t.Errorf("zones differ: %v vs %v", first.Zone, second.Zone)
	}
}

func TestRun_DropsUndefinedRecords(t *testing.T) {
	report, err := Run(buildSeries(constantCloses(1300, 100)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 1300 - model.Window1200; len(report.Records) != want {
		t.Errorf("expected %d records after dropping, got %d", want, len(report.Records))
	}
	for i, rec := range report.Records {
		if !rec.Defined() {
			t.Fatalf("record %d has undefined velocity after filtering", i)
		}
	}
}
