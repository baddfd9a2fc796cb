package recorder

import "HoopsSentinel/internal/model"

// RunRecord holds everything worth keeping from one daily run.
type RunRecord struct {
	Report *model.Report
}

// Recorder persists historical run data for analysis.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
