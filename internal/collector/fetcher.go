package collector

import "VelocityWatch/internal/model"

// Fetcher defines the interface for fetching historical closing prices.
// Span is a provider range string such as "5y" or "10y".
type Fetcher interface {
	FetchDailyCloses(symbol string, span string) ([]model.PricePoint, error)
	Name() string
}
