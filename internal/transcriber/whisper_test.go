package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tinyscribe/internal/config"
	"tinyscribe/internal/logger"
	"tinyscribe/internal/report"
)

// scriptedExecutor fakes a whisper run by writing SRT content next to
// the requested output prefix.
type scriptedExecutor struct {
	srtContent string
	err        error
	calls      int
}

func (f *scriptedExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "--output-file" {
			if err := os.WriteFile(args[i+1]+".srt", []byte(f.srtContent), 0644); err != nil {
				return "", err
			}
		}
	}
	return "", nil
}

func testTranscriberConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	binaryPath := filepath.Join(dir, "whisper")
	modelPath := filepath.Join(dir, "model.bin")
	if err := os.WriteFile(binaryPath, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(modelPath, []byte("weights"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Whisper: config.WhisperConfig{
			ModelPath:  modelPath,
			BinaryPath: binaryPath,
		},
		Paths: config.PathsConfig{Output: dir},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func testWav(t *testing.T) report.AudioSource {
	t.Helper()
	return report.AudioSource{
		Name:       "talk.mp3",
		WavPath:    filepath.Join(t.TempDir(), "talk_16k.wav"),
		SampleRate: 16000,
	}
}

func TestTranscribe(t *testing.T) {
	exec := &scriptedExecutor{srtContent: sampleSRT}
	tr := New(testTranscriberConfig(t), exec, logger.New("error"))

	segments, err := tr.Transcribe(context.Background(), testWav(t))
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if len(segments) != 3 {
		t.Errorf("len(segments) = %d, want 3", len(segments))
	}
	if exec.calls != 1 {
		t.Errorf("executor called %d times, want 1", exec.calls)
	}
}

func TestTranscribeMissingModel(t *testing.T) {
	cfg := testTranscriberConfig(t)
	cfg.Whisper.ModelPath = filepath.Join(t.TempDir(), "missing.bin")
	exec := &scriptedExecutor{}
	tr := New(cfg, exec, logger.New("error"))

	_, err := tr.Transcribe(context.Background(), testWav(t))
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("Transcribe() error = %v, want ErrModelUnavailable", err)
	}
	if exec.calls != 0 {
		t.Error("whisper should not run when the model is unavailable")
	}
}

func TestTranscribeEmptyModelFile(t *testing.T) {
	cfg := testTranscriberConfig(t)
	emptyModel := filepath.Join(t.TempDir(), "empty.bin")
	if err := os.WriteFile(emptyModel, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg.Whisper.ModelPath = emptyModel

	tr := New(cfg, &scriptedExecutor{}, logger.New("error"))

	_, err := tr.Transcribe(context.Background(), testWav(t))
	if !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("Transcribe() error = %v, want ErrModelUnavailable", err)
	}
}

func TestTranscribeEngineCheckCached(t *testing.T) {
	cfg := testTranscriberConfig(t)
	exec := &scriptedExecutor{srtContent: sampleSRT}
	tr := New(cfg, exec, logger.New("error"))

	if _, err := tr.Transcribe(context.Background(), testWav(t)); err != nil {
		t.Fatalf("first Transcribe() error = %v", err)
	}

	// Removing the model after the first run must not affect later runs;
	// the engine check result is cached for the process lifetime.
	if err := os.Remove(cfg.Whisper.ModelPath); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Transcribe(context.Background(), testWav(t)); err != nil {
		t.Errorf("second Transcribe() error = %v", err)
	}
}

func TestTranscribeCallerDeadlineNotTimeout(t *testing.T) {
	tests := []struct {
		name           string
		timeoutMinutes int
	}{
		{"guard disabled", 0},
		{"guard enabled", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testTranscriberConfig(t)
			cfg.Whisper.TimeoutMinutes = tt.timeoutMinutes

			exec := &scriptedExecutor{err: context.DeadlineExceeded}
			tr := New(cfg, exec, logger.New("error"))

			ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
			defer cancel()

			_, err := tr.Transcribe(ctx, testWav(t))
			if err == nil {
				t.Fatal("Transcribe() should fail when the caller deadline has passed")
			}
			if errors.Is(err, ErrTimeout) {
				t.Errorf("caller deadline misreported as transcription timeout: %v", err)
			}
		})
	}
}

func TestTranscribeWhisperFailure(t *testing.T) {
	exec := &scriptedExecutor{err: errors.New("exit status 1")}
	tr := New(testTranscriberConfig(t), exec, logger.New("error"))

	if _, err := tr.Transcribe(context.Background(), testWav(t)); err == nil {
		t.Error("Transcribe() should fail when whisper fails")
	}
}
