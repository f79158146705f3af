package report

import (
	"strings"
	"testing"
	"time"
)

func testReport(summary *Summary) *Report {
	return Assemble(
		AudioSource{
			Path:       "/tmp/lecture.mp3",
			Name:       "lecture.mp3",
			Duration:   3661,
			SampleRate: 16000,
		},
		[]Segment{
			{Start: 0, End: 5, Text: "Hello"},
			{Start: 5, End: 10, Text: "world"},
		},
		[]Chapter{
			{Start: 0, Title: "Hello"},
		},
		summary,
		time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	)
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "00:00:00"},
		{"one of each", 3661, "01:01:01"},
		{"beyond a day", 90000, "25:00:00"},
		{"sub-second truncated", 59.999, "00:00:59"},
		{"negative clamped", -5, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.seconds); got != tt.want {
				t.Errorf("FormatTimestamp(%f) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	rep := testReport(&Summary{
		Overview:  "A short talk.",
		KeyPoints: []string{"greeting", "farewell"},
	})

	first := Render(rep)
	second := Render(rep)
	if first != second {
		t.Error("Render() is not deterministic for identical input")
	}
}

func TestRenderSectionOrder(t *testing.T) {
	out := Render(testReport(&Summary{
		Overview:  "A short talk.",
		KeyPoints: []string{"greeting"},
	}))

	sections := []string{
		"# Audio Report: lecture.mp3",
		"- Duration: 01:01:01",
		"## Summary",
		"A short talk.",
		"### Key Points",
		"- greeting",
		"## Chapters",
		"1. [00:00:00] Hello",
		"## Transcript",
		"[00:00:00] Hello",
		"[00:00:05] world",
	}

	last := -1
	for _, s := range sections {
		idx := strings.Index(out, s)
		if idx < 0 {
			t.Fatalf("section %q missing from output:\n%s", s, out)
		}
		if idx < last {
			t.Errorf("section %q appears out of order", s)
		}
		last = idx
	}
}

func TestRenderDegradedReport(t *testing.T) {
	out := Render(testReport(nil))

	if !strings.Contains(out, summaryUnavailable) {
		t.Error("degraded report should mark the summary as unavailable")
	}
	if strings.Contains(out, "### Key Points") {
		t.Error("degraded report should not contain a key points section")
	}
	if !strings.Contains(out, "## Transcript") {
		t.Error("degraded report should still contain the transcript")
	}
}
