package calculator

import "VelocityWatch/internal/model"

// Velocity weights. Fixed by design: the three lookback growth rates
// contribute equally.
const (
	weight240  = 1.0 / 3.0
	weight480  = 1.0 / 3.0
	weight1200 = 1.0 / 3.0
)

// Velocity combines the three growth rates into a single scalar.
// NaN propagates: any undefined growth rate makes the result undefined,
// never a partial average.
func Velocity(rec model.AnnotatedRecord) float64 {
	return rec.Growth240*weight240 + rec.Growth480*weight480 + rec.Growth1200*weight1200
}

// Aggregate extends each annotated record with its velocity.
func Aggregate(records []model.AnnotatedRecord) []model.VelocityRecord {
	out := make([]model.VelocityRecord, len(records))
	for i, rec := range records {
		out[i] = model.VelocityRecord{
			AnnotatedRecord: rec,
			Velocity:        Velocity(rec),
		}
	}
	return out
}
