package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"tinyscribe/internal/chapters"
	"tinyscribe/internal/report"
	"tinyscribe/internal/summarizer"
)

// Process runs the full pipeline for one audio file. Chapter
// segmentation and summarization run concurrently once the transcript
// is available; both complete before assembly. Any fatal stage failure
// aborts the run without persisting a report, except a summarizer
// failure with graceful degradation enabled, which persists a report
// with the summary marked unavailable.
func (p *implPipeline) Process(ctx context.Context, audioPath string) (string, error) {
	runID := uuid.NewString()[:8]
	started := time.Now()

	p.logger.Info(ctx, "[%s] Processing: %s", runID, audioPath)

	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", &StageError{Stage: StageIngest, Err: err}
	}
	workDir, err := os.MkdirTemp(p.cfg.Paths.Temp, "run-"+runID+"-*")
	if err != nil {
		return "", &StageError{Stage: StageIngest, Err: err}
	}
	defer p.cleanupWorkDir(ctx, workDir)

	src, err := p.ingestor.Ingest(ctx, audioPath, workDir)
	if err != nil {
		return "", &StageError{Stage: StageIngest, Err: err}
	}

	segments, err := p.transcriber.Transcribe(ctx, src)
	if err != nil {
		return "", &StageError{Stage: StageTranscribe, Err: err}
	}
	if len(segments) == 0 {
		// Fail before the summarizer spends remote quota on nothing.
		return "", &StageError{Stage: StageChapters, Err: chapters.ErrEmptyTranscript}
	}

	type summaryResult struct {
		summary *report.Summary
		err     error
	}
	summaryCh := make(chan summaryResult, 1)
	if p.summarizer == nil {
		// No credential was available at startup; under graceful
		// degradation this becomes a summary-less report below.
		summaryCh <- summaryResult{err: fmt.Errorf("%w: summarizer not configured", summarizer.ErrAuth)}
	} else {
		go func() {
			s, err := p.summarizer.Summarize(ctx, transcriptText(segments))
			summaryCh <- summaryResult{summary: s, err: err}
		}()
	}

	chs, err := chapters.Split(segments, chapters.Options{
		SilenceGap:    p.cfg.Chapters.SilenceGapSeconds,
		MaxChapterLen: p.cfg.Chapters.MaxChapterMinutes * 60,
		MaxChapters:   p.cfg.Chapters.MaxChapters,
		TitleWords:    p.cfg.Chapters.TitleWords,
	})
	if err != nil {
		return "", &StageError{Stage: StageChapters, Err: err}
	}

	res := <-summaryCh
	var summary *report.Summary
	switch {
	case res.err == nil:
		summary = res.summary
	case p.cfg.Pipeline.GracefulDegradation:
		p.logger.Warn(ctx, "[%s] Summarization failed, writing degraded report: %v", runID, res.err)
	default:
		return "", &StageError{Stage: StageSummarize, Err: res.err}
	}

	rep := report.Assemble(src, segments, chs, summary, time.Now())
	outPath, err := p.persist(ctx, rep)
	if err != nil {
		return "", &StageError{Stage: StagePersist, Err: err}
	}

	p.logger.Info(ctx, "[%s] Report written: %s (%d segments, %d chapters, %s)",
		runID, outPath, len(segments), len(chs), time.Since(started).Truncate(time.Millisecond))
	return outPath, nil
}

// transcriptText concatenates segment texts for the summarizer payload.
func transcriptText(segments []report.Segment) string {
	var b strings.Builder
	for i, s := range segments {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(strings.TrimSpace(s.Text))
	}
	return b.String()
}

func (p *implPipeline) cleanupWorkDir(ctx context.Context, workDir string) {
	if err := os.RemoveAll(workDir); err != nil {
		p.logger.Warn(ctx, "Failed to clean up workspace %s: %v", workDir, err)
	}
}
