package model

import "time"

// PricePoint represents a single daily close.
// Date is normalized to midnight UTC (zone-naive) at ingestion.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds raw price data for one analysis run.
// Invariant: Points are ascending by date with no duplicate dates.
type PriceSeries struct {
	Symbol    string
	Points    []PricePoint
	FetchedAt time.Time
}

// Len returns the number of price points.
func (s *PriceSeries) Len() int { return len(s.Points) }
