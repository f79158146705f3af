package pipeline

import (
	"errors"
	"fmt"
)

// ErrPersist marks a failure to write the report to disk. Always fatal;
// there is nowhere else to put the output.
var ErrPersist = errors.New("report persistence failure")

// Stage names surfaced to users when a run fails.
const (
	StageIngest     = "ingest"
	StageTranscribe = "transcribe"
	StageChapters   = "chapters"
	StageSummarize  = "summarize"
	StagePersist    = "persist"
)

// StageError identifies which pipeline stage failed. errors.Is and
// errors.As reach the underlying cause through Unwrap.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
