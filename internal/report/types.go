package report

import "time"

// AudioSource references an ingested audio file plus the metadata derived
// during normalization. It is created once at ingest and never mutated.
type AudioSource struct {
	Path       string  // original file as given by the caller
	Name       string  // basename of Path
	WavPath    string  // normalized mono 16kHz WAV in the run workspace
	Duration   float64 // seconds, probed from the original file
	SampleRate int     // sample rate of WavPath
}

// Segment is a contiguous span of transcribed speech.
type Segment struct {
	Start float64 // seconds
	End   float64 // seconds, End >= Start
	Text  string
}

// Chapter is a navigation point anchored to a segment start time.
type Chapter struct {
	Start float64 // seconds, equals some Segment.Start
	Title string
}

// Summary is the structured result of one summarization call.
type Summary struct {
	Overview  string
	KeyPoints []string
}

// Report aggregates everything one pipeline run produced. Summary is nil
// when the run was degraded (summarization failed but the caller opted
// into a partial report).
type Report struct {
	Source      AudioSource
	Segments    []Segment
	Chapters    []Chapter
	Summary     *Summary
	GeneratedAt time.Time
}

// Assemble builds a Report from the outputs of the pipeline stages.
func Assemble(src AudioSource, segments []Segment, chapters []Chapter, summary *Summary, generatedAt time.Time) *Report {
	return &Report{
		Source:      src,
		Segments:    segments,
		Chapters:    chapters,
		Summary:     summary,
		GeneratedAt: generatedAt,
	}
}
