package pipeline

import "context"

// Pipeline is the sole entry point for processing one audio file into a
// persisted report, shared by the CLI and watch mode.
type Pipeline interface {
	// Process runs ingest, transcription, chaptering, summarization, and
	// report assembly, and returns the path of the written report.
	Process(ctx context.Context, audioPath string) (string, error)
}
