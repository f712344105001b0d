package collector

import (
	"fmt"
	"sort"
	"time"

	"VelocityWatch/internal/model"
	"VelocityWatch/internal/pipeline"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Points []model.PricePoint
	Count  int
	Base   float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(_ string, _ string) ([]model.PricePoint, error) {
	if m.Points != nil {
		return m.Points, nil
	}
	return generateMockPoints(m.Base, m.Count), nil
}

func generateMockPoints(basePrice float64, count int) []model.PricePoint {
	points := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		points[i] = model.PricePoint{
			Date:  time.Now().AddDate(0, 0, -(count - i)),
			Close: basePrice * (1 + float64(i-count/2)*0.0001),
		}
	}
	return points
}

// Collector fetches a price series and runs the velocity pipeline over it.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
	Span    string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol, span string) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol, Span: span}
}

// Analyze fetches the historical closes and produces the velocity report.
func (c *Collector) Analyze() (*pipeline.Report, error) {
	raw, err := c.Fetcher.FetchDailyCloses(c.Symbol, c.Span)
	if err != nil {
		return nil, fmt.Errorf("fetch daily closes: %w", err)
	}

	series := &model.PriceSeries{
		Symbol:    c.Symbol,
		Points:    Normalize(raw),
		FetchedAt: time.Now(),
	}
	return pipeline.Run(series)
}

// Normalize sorts points ascending by date, drops duplicate dates (last one
// wins) and strips any time-zone offset down to midnight UTC. The export and
// report layers rely on dates being zone-naive.
func Normalize(points []model.PricePoint) []model.PricePoint {
	out := make([]model.PricePoint, len(points))
	for i, p := range points {
		y, m, d := p.Date.Date()
		out[i] = model.PricePoint{
			Date:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
			Close: p.Close,
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	dedup := out[:0]
	for _, p := range out {
		if len(dedup) > 0 && dedup[len(dedup)-1].Date.Equal(p.Date) {
			dedup[len(dedup)-1] = p
			continue
		}
		dedup = append(dedup, p)
	}
	return dedup
}
