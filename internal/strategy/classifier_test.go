package strategy

import (
	"math"
	"testing"

	"VelocityWatch/internal/model"
)

func TestClassify_AllBoundaries(t *testing.T) {
	tests := []struct {
		velocity float64
		label    string
	}{
		{300, model.ZoneBubble.Label},
		{150.0000001, model.ZoneBubble.Label},
		{150, model.ZoneOverheated.Label},
		{125, model.ZoneOverheated.Label},
		{100, model.ZoneNormal.Label},
		{75, model.ZoneNormal.Label},
		{50, model.ZoneSlow.Label},
		{25, model.ZoneSlow.Label},
		{0.0000001, model.ZoneSlow.Label},
		{0, model.ZoneRetreat.Label},
		{-25, model.ZoneRetreat.Label},
		{-200, model.ZoneRetreat.Label},
	}
	for _, tt := range tests {
		zone := Classify(tt.velocity)
		if zone.Label != tt.label {
			t.Errorf("velocity %.7f: expected %q, got %q", tt.velocity, tt.label, zone.Label)
		}
	}
}

func TestClassify_Total(t *testing.T) {
	// Every real input must land in exactly one zone with a recommendation.
	inputs := []float64{math.Inf(1), math.Inf(-1), 1e308, -1e308, 0, 150, 100, 50}
	for _, v := range inputs {
		zone := Classify(v)
		if zone.Label == "" || zone.Recommendation == "" {
			t.Errorf("velocity %v: classification produced an empty zone", v)
		}
	}
}
