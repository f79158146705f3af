package transcriber

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"tinyscribe/internal/report"
)

var (
	// ErrModelUnavailable means the whisper binary or model weights are
	// missing or unreadable. Re-fetching the cached model fixes it.
	ErrModelUnavailable = errors.New("whisper model unavailable")

	// ErrTimeout marks transcriptions that exceeded the configured
	// max-duration guard.
	ErrTimeout = errors.New("transcription timed out")
)

// Transcribe invokes whisper.cpp on the normalized WAV and parses the
// emitted SRT into ordered segments.
func (t *implTranscriber) Transcribe(ctx context.Context, src report.AudioSource) ([]report.Segment, error) {
	if err := t.ensureEngine(); err != nil {
		return nil, err
	}

	runCtx := ctx
	cancel := func() {}
	timeout := time.Duration(t.cfg.Whisper.TimeoutMinutes) * time.Minute
	if timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	outputPrefix := strings.TrimSuffix(src.WavPath, filepath.Ext(src.WavPath))

	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.cfg.Whisper.Threads, src.WavPath)

	args := []string{
		"-m", t.cfg.Whisper.ModelPath,
		"-f", src.WavPath,
		"-osrt",
		"-l", t.cfg.Whisper.Language,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(runCtx, t.cfg.Whisper.BinaryPath, args...); err != nil {
		// Only the guard's own deadline maps to ErrTimeout; a caller
		// deadline or cancellation is the caller's failure to report.
		if timeout > 0 && errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w after %s", ErrTimeout, timeout)
		}
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	srtPath := outputPrefix + ".srt"
	data, err := os.ReadFile(srtPath)
	if err != nil {
		return nil, fmt.Errorf("whisper completed but transcript is missing: %w", err)
	}

	segments, err := ParseSRT(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	t.logger.Info(ctx, "Transcription completed: %d segments", len(segments))
	return segments, nil
}

// ensureEngine verifies the whisper binary and model weights exist.
// It runs once per process and the result is reused by every run.
func (t *implTranscriber) ensureEngine() error {
	t.engineOnce.Do(func() {
		if _, err := os.Stat(t.cfg.Whisper.BinaryPath); err != nil {
			t.engineErr = fmt.Errorf("%w: binary not found at %s", ErrModelUnavailable, t.cfg.Whisper.BinaryPath)
			return
		}
		info, err := os.Stat(t.cfg.Whisper.ModelPath)
		if err != nil {
			t.engineErr = fmt.Errorf("%w: model weights not found at %s, re-download the model and retry", ErrModelUnavailable, t.cfg.Whisper.ModelPath)
			return
		}
		if info.Size() == 0 {
			t.engineErr = fmt.Errorf("%w: model file %s is empty, re-download the model and retry", ErrModelUnavailable, t.cfg.Whisper.ModelPath)
		}
	})
	return t.engineErr
}
