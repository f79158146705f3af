package summarizer

import (
	"context"

	"tinyscribe/internal/report"
)

// Summarizer sends transcript text to a remote LLM and returns a
// structured summary. Only derived text ever leaves the machine, never
// the audio itself.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (*report.Summary, error)
}
