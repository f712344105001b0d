package strategy

import "VelocityWatch/internal/model"

// Zones defines the velocity threshold table, evaluated top to bottom.
// A velocity exactly on a boundary (150, 100, 50, 0) falls into the lower
// zone of the pair: 150 is Overheated, not Bubble.
var Zones = []struct {
	MinVelocity float64 // exclusive lower bound, in percent
	Zone        model.Zone
}{
	{150, model.ZoneBubble},
	{100, model.ZoneOverheated},
	{50, model.ZoneNormal},
	{0, model.ZoneSlow},
}

// DefaultZone is the bottom zone for velocity <= 0.
var DefaultZone = model.ZoneRetreat

// Classify maps a velocity value to exactly one trading zone.
// Total over all reals; the caller must not pass NaN.
func Classify(velocity float64) model.Zone {
	for _, z := range Zones {
		if velocity > z.MinVelocity {
			return z.Zone
		}
	}
	return DefaultZone
}
