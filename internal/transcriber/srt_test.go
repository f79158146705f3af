package transcriber

import (
	"strings"
	"testing"
)

const sampleSRT = `1
00:00:00,000 --> 00:00:04,500
Hello and welcome

2
00:00:04,500 --> 00:00:09,250
to this short recording.

3
00:00:12,000 --> 00:00:15,000
Let's begin.
`

func TestParseSRT(t *testing.T) {
	segments, err := ParseSRT(sampleSRT)
	if err != nil {
		t.Fatalf("ParseSRT() error = %v", err)
	}

	if len(segments) != 3 {
		t.Fatalf("len(segments) = %d, want 3", len(segments))
	}
	if segments[0].Start != 0 || segments[0].End != 4.5 {
		t.Errorf("segments[0] = %+v, want start 0 end 4.5", segments[0])
	}
	if segments[1].Text != "to this short recording." {
		t.Errorf("segments[1].Text = %q", segments[1].Text)
	}
	if segments[2].Start != 12 {
		t.Errorf("segments[2].Start = %f, want 12", segments[2].Start)
	}
}

func TestParseSRTMultilineCue(t *testing.T) {
	srt := "1\n00:00:00,000 --> 00:00:03,000\nfirst line\nsecond line\n"

	segments, err := ParseSRT(srt)
	if err != nil {
		t.Fatalf("ParseSRT() error = %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("len(segments) = %d, want 1", len(segments))
	}
	if segments[0].Text != "first line second line" {
		t.Errorf("Text = %q", segments[0].Text)
	}
}

func TestParseSRTLongRecording(t *testing.T) {
	srt := "1\n25:00:00,000 --> 25:00:05,000\nstill talking\n"

	segments, err := ParseSRT(srt)
	if err != nil {
		t.Fatalf("ParseSRT() error = %v", err)
	}
	if segments[0].Start != 90000 {
		t.Errorf("Start = %f, want 90000", segments[0].Start)
	}
}

func TestParseSRTEmpty(t *testing.T) {
	segments, err := ParseSRT("")
	if err != nil {
		t.Fatalf("ParseSRT() error = %v", err)
	}
	if len(segments) != 0 {
		t.Errorf("len(segments) = %d, want 0", len(segments))
	}
}

func TestParseSRTRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		srt  string
	}{
		{
			"garbage timing line",
			"1\nnot a timestamp\ntext\n",
		},
		{
			"reversed interval",
			"1\n00:00:10,000 --> 00:00:05,000\ntext\n",
		},
		{
			"decreasing start times",
			strings.Join([]string{
				"1", "00:01:00,000 --> 00:01:05,000", "later", "",
				"2", "00:00:00,000 --> 00:00:05,000", "earlier", "",
			}, "\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSRT(tt.srt); err == nil {
				t.Error("ParseSRT() should reject malformed input")
			}
		})
	}
}
