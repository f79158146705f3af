// Package chapters derives navigation points from a transcript. It is a
// pure function of its input: no I/O, deterministic for identical
// segments and options.
package chapters

import (
	"errors"
	"fmt"
	"strings"

	"tinyscribe/internal/report"
)

// ErrEmptyTranscript is returned when no segments were produced for the
// recording.
var ErrEmptyTranscript = errors.New("transcript has no segments")

// Options controls the segmentation heuristic. Zero values fall back to
// the defaults below.
type Options struct {
	SilenceGap    float64 // seconds of silence that open a new chapter
	MaxChapterLen float64 // seconds of speech before a forced break
	MaxChapters   int
	TitleWords    int // leading words of the boundary segment used as title
}

func (o Options) withDefaults() Options {
	if o.SilenceGap <= 0 {
		o.SilenceGap = 3
	}
	if o.MaxChapterLen <= 0 {
		o.MaxChapterLen = 300
	}
	if o.MaxChapters <= 0 {
		o.MaxChapters = 8
	}
	if o.TitleWords <= 0 {
		o.TitleWords = 6
	}
	return o
}

// Split scans the transcript for silence gaps and elapsed-duration
// breaks and emits a chapter at the start of the segment following each
// boundary. Chapter starts always coincide with a segment start and are
// strictly increasing; non-empty input yields at least one chapter.
func Split(segments []report.Segment, opts Options) ([]report.Chapter, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyTranscript
	}
	opts = opts.withDefaults()

	chapters := []report.Chapter{{
		Start: segments[0].Start,
		Title: title(segments[0], 1, opts.TitleWords),
	}}
	chapterStart := segments[0].Start

	for i := 1; i < len(segments); i++ {
		if len(chapters) >= opts.MaxChapters {
			break
		}

		gap := segments[i].Start - segments[i-1].End
		elapsed := segments[i].Start - chapterStart
		if gap < opts.SilenceGap && elapsed < opts.MaxChapterLen {
			continue
		}
		// Zero-length segments can share a start time; a chapter there
		// would overlap the previous one.
		if segments[i].Start <= chapters[len(chapters)-1].Start {
			continue
		}

		chapters = append(chapters, report.Chapter{
			Start: segments[i].Start,
			Title: title(segments[i], len(chapters)+1, opts.TitleWords),
		})
		chapterStart = segments[i].Start
	}

	return chapters, nil
}

// title takes the leading words of the boundary segment, falling back to
// a numbered placeholder when the segment carries no text.
func title(seg report.Segment, index, maxWords int) string {
	words := strings.Fields(seg.Text)
	if len(words) == 0 {
		return fmt.Sprintf("Chapter %d", index)
	}
	if len(words) > maxWords {
		return strings.Join(words[:maxWords], " ") + "..."
	}
	return strings.Join(words, " ")
}
