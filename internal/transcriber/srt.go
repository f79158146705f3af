package transcriber

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tinyscribe/internal/report"
)

// reCueTime matches an SRT cue timing line. Hours may exceed two digits
// for very long recordings; both comma and dot millisecond separators
// appear in the wild.
var reCueTime = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2})[,.](\d{3})\s*-->\s*(\d{2,}):(\d{2}):(\d{2})[,.](\d{3})$`)

// ParseSRT converts SRT subtitle content into transcript segments and
// enforces the chronological-order contract: start times never decrease
// and no segment ends before it starts.
func ParseSRT(content string) ([]report.Segment, error) {
	var segments []report.Segment

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			i++
			continue
		}

		// Cue index line is optional in practice; skip it when present.
		if _, err := strconv.Atoi(line); err == nil {
			i++
			if i >= len(lines) {
				break
			}
			line = strings.TrimSpace(lines[i])
		}

		m := reCueTime.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("malformed cue timing at line %d: %q", i+1, line)
		}
		start := cueSeconds(m[1], m[2], m[3], m[4])
		end := cueSeconds(m[5], m[6], m[7], m[8])
		i++

		var text []string
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			text = append(text, strings.TrimSpace(lines[i]))
			i++
		}

		if end < start {
			return nil, fmt.Errorf("segment ends before it starts: %f > %f", start, end)
		}
		if n := len(segments); n > 0 && start < segments[n-1].Start {
			return nil, fmt.Errorf("segments out of order: %f after %f", start, segments[n-1].Start)
		}

		segments = append(segments, report.Segment{
			Start: start,
			End:   end,
			Text:  strings.Join(text, " "),
		})
	}

	return segments, nil
}

func cueSeconds(h, m, s, ms string) float64 {
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	seconds, _ := strconv.Atoi(s)
	millis, _ := strconv.Atoi(ms)
	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(millis)/1000
}
