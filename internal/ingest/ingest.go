package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tinyscribe/internal/report"
)

// ErrDecode marks input files that cannot be read or decoded as audio.
// It is fatal and reported before any remote call is attempted.
var ErrDecode = errors.New("unsupported or undecodable audio")

const normalizedSampleRate = 16000

var supportedExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".flac": true,
	".aac":  true,
	".ogg":  true,
}

// Ingest validates the audio file, probes its duration, and converts it
// to mono 16kHz PCM WAV, the format whisper expects.
func (i *implIngestor) Ingest(ctx context.Context, path, workDir string) (report.AudioSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return report.AudioSource{}, fmt.Errorf("%w: cannot access %s: %v", ErrDecode, path, err)
	}
	if info.IsDir() {
		return report.AudioSource{}, fmt.Errorf("%w: %s is a directory", ErrDecode, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return report.AudioSource{}, fmt.Errorf("%w: unsupported extension %q (supported: mp3, wav, m4a, flac, aac, ogg)", ErrDecode, ext)
	}

	duration, err := i.probeDuration(ctx, path)
	if err != nil {
		return report.AudioSource{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	name := filepath.Base(path)
	wavPath := filepath.Join(workDir, strings.TrimSuffix(name, ext)+"_16k.wav")

	i.logger.Info(ctx, "Normalizing audio: %s", path)

	// -vn strips any cover art stream; mono 16kHz PCM is what the
	// transcription model expects.
	args := []string{
		"-i", path,
		"-vn",
		"-ar", strconv.Itoa(normalizedSampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}
	if _, err := i.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return report.AudioSource{}, fmt.Errorf("%w: ffmpeg normalize: %v", ErrDecode, err)
	}

	i.logger.Debug(ctx, "Audio normalized: %s (%.1fs)", wavPath, duration)

	return report.AudioSource{
		Path:       path,
		Name:       name,
		WavPath:    wavPath,
		Duration:   duration,
		SampleRate: normalizedSampleRate,
	}, nil
}

// probeDuration reads the container duration in seconds via ffprobe.
func (i *implIngestor) probeDuration(ctx context.Context, path string) (float64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}
	out, err := i.executor.Execute(ctx, "ffprobe", args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %v", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %v", strings.TrimSpace(out), err)
	}
	if duration < 0 {
		return 0, fmt.Errorf("negative duration %f", duration)
	}
	return duration, nil
}
