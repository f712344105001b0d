package calculator

import (
	"errors"
	"math"

	"VelocityWatch/internal/model"
)

// GrowthRates computes the percentage change of each close against the close
// W points earlier: (close[i] - close[i-W]) / close[i-W] * 100.
// The first W entries are NaN, as is any entry whose lookback base is zero.
func GrowthRates(closes []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	rates := make([]float64, len(closes))
	for i := range closes {
		if i < window {
			rates[i] = math.NaN()
			continue
		}
		base := closes[i-window]
		if base == 0 {
			// Division by zero would yield ±Inf; keep it undefined so it
			// gets dropped downstream like insufficient history.
			rates[i] = math.NaN()
			continue
		}
		rates[i] = (closes[i] - base) / base * 100
	}
	return rates, nil
}

// Annotate derives the 240/480/1200-day growth rates for every point of the
// series. The input series is never mutated.
func Annotate(series *model.PriceSeries) ([]model.AnnotatedRecord, error) {
	closes := extractCloses(series.Points)

	g240, err := GrowthRates(closes, model.Window240)
	if err != nil {
		return nil, err
	}
	g480, err := GrowthRates(closes, model.Window480)
	if err != nil {
		return nil, err
	}
	g1200, err := GrowthRates(closes, model.Window1200)
	if err != nil {
		return nil, err
	}

	records := make([]model.AnnotatedRecord, len(series.Points))
	for i, p := range series.Points {
		records[i] = model.AnnotatedRecord{
			PricePoint: p,
			Growth240:  g240[i],
			Growth480:  g480[i],
			Growth1200: g1200[i],
		}
	}
	return records, nil
}

func extractCloses(points []model.PricePoint) []float64 {
	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Close
	}
	return closes
}
