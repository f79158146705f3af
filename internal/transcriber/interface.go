package transcriber

import (
	"context"

	"tinyscribe/internal/report"
)

// Transcriber converts normalized audio into timestamped segments.
type Transcriber interface {
	// Transcribe runs speech recognition on src and returns segments in
	// chronological order covering the spoken audio.
	Transcribe(ctx context.Context, src report.AudioSource) ([]report.Segment, error)
}
