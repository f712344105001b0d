package collector

import (
	"errors"
	"testing"
	"time"

	"VelocityWatch/internal/model"
	"VelocityWatch/internal/pipeline"
)

func TestNormalize(t *testing.T) {
	seoul := time.FixedZone("KST", 9*3600)
	points := []model.PricePoint{
		{Date: time.Date(2024, 1, 3, 15, 30, 0, 0, seoul), Close: 103},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Close: 101},
		{Date: time.Date(2024, 1, 2, 16, 0, 0, 0, time.UTC), Close: 102}, // same day, later fetch wins
	}

	out := Normalize(points)
	if len(out) != 2 {
		t.Fatalf("expected 2 points after dedup, got %d", len(out))
	}
	if out[0].Close != 102 {
		t.Errorf("duplicate date: expected last value 102 to win, got %v", out[0].Close)
	}
	for i, p := range out {
		if p.Date.Location() != time.UTC {
			t.Errorf("point %d: date not normalized to UTC: %v", i, p.Date)
		}
		if h, m, s := p.Date.Clock(); h != 0 || m != 0 || s != 0 {
			t.Errorf("point %d: date not truncated to midnight: %v", i, p.Date)
		}
	}
	if !out[0].Date.Before(out[1].Date) {
		t.Error("points not sorted ascending by date")
	}
}

func TestAnalyze_WithMockFetcher(t *testing.T) {
	fetcher := &MockFetcher{Base: 15000, Count: 1300}
	col := NewCollector(fetcher, "Nasdaq 100", "5y")

	report, err := col.Analyze()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Symbol != "Nasdaq 100" {
		t.Errorf("unexpected symbol: %s", report.Symbol)
	}
	if want := 1300 - model.Window1200; len(report.Records) != want {
		t.Errorf("expected %d records, got %d", want, len(report.Records))
	}
	if !report.Latest.Defined() {
		t.Error("latest record should carry a defined velocity")
	}
	if report.Zone.Label == "" {
		t.Error("report should carry a zone")
	}
}

func TestAnalyze_InsufficientHistory(t *testing.T) {
	fetcher := &MockFetcher{Base: 5000, Count: 400}
	col := NewCollector(fetcher, "S&P 500", "1y")

	_, err := col.Analyze()
	if !errors.Is(err, pipeline.ErrInsufficientHistory) {
		t.Errorf("expected ErrInsufficientHistory, got: %v", err)
	}
}
