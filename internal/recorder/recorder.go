package recorder

import (
	"VelocityWatch/internal/model"
)

// Snapshot holds the latest velocity reading of one analysis run.
type Snapshot struct {
	Symbol string
	Record model.VelocityRecord
	Zone   model.Zone
}

// Recorder persists analysis history.
type Recorder interface {
	RecordSnapshot(snap *Snapshot) error
	Close() error
}
