package pipeline

import (
	"errors"
	"fmt"

	"VelocityWatch/internal/calculator"
	"VelocityWatch/internal/model"
	"VelocityWatch/internal/strategy"
)

// ErrInsufficientHistory is returned when the series is too short to produce
// a single defined velocity (fewer than 1201 points).
var ErrInsufficientHistory = errors.New("insufficient price history for velocity calculation")

// Report is the full output of one pipeline run.
type Report struct {
	Symbol  string
	Records []model.VelocityRecord // NaN-velocity records already dropped
	Latest  model.VelocityRecord
	Zone    model.Zone
}

// Run sequences annotation, velocity aggregation and zone classification over
// the series, drops records without a defined velocity, and classifies the
// trailing record. Deterministic: the same series always yields the same report.
func Run(series *model.PriceSeries) (*Report, error) {
	annotated, err := calculator.Annotate(series)
	if err != nil {
		return nil, fmt.Errorf("annotate %s: %w", series.Symbol, err)
	}

	all := calculator.Aggregate(annotated)

	records := make([]model.VelocityRecord, 0, len(all))
	for _, rec := range all {
		if rec.Defined() {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w (got %d points, need more than %d)",
			series.Symbol, ErrInsufficientHistory, series.Len(), model.Window1200)
	}

	latest := records[len(records)-1]
	return &Report{
		Symbol:  series.Symbol,
		Records: records,
		Latest:  latest,
		Zone:    strategy.Classify(latest.Velocity),
	}, nil
}
