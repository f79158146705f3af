package ingest

import (
	"context"

	"tinyscribe/internal/report"
)

// Ingestor validates an audio file and normalizes it for transcription.
type Ingestor interface {
	// Ingest probes the file at path and writes a normalized mono 16kHz
	// WAV into workDir. The caller owns workDir and removes it after the
	// run.
	Ingest(ctx context.Context, path, workDir string) (report.AudioSource, error)
}
