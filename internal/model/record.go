package model

import "math"

// Lookback windows in trading days, approximating 1, 2 and 5 years.
const (
	Window240  = 240
	Window480  = 480
	Window1200 = 1200
)

// AnnotatedRecord is a PricePoint extended with growth rates over the three
// fixed lookback windows, in percent. A growth rate is NaN when the record
// sits less than W points from the start of the series, or when the lookback
// base close is zero.
type AnnotatedRecord struct {
	PricePoint
	Growth240  float64
	Growth480  float64
	Growth1200 float64
}

// VelocityRecord is an AnnotatedRecord extended with the aggregated velocity.
// Velocity is NaN unless all three growth rates are defined.
type VelocityRecord struct {
	AnnotatedRecord
	Velocity float64
}

// Defined reports whether the record carries a usable velocity value.
func (r *VelocityRecord) Defined() bool { return !math.IsNaN(r.Velocity) }
