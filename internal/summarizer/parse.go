package summarizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"tinyscribe/internal/report"
)

// parseSummary validates the provider response against the expected
// shape. Models occasionally wrap JSON in markdown fences despite the
// prompt, so fences are stripped before decoding. A summary missing its
// overview or key points is rejected rather than half-populated.
func parseSummary(raw string) (*report.Summary, error) {
	cleaned := stripFences(strings.TrimSpace(raw))

	var payload struct {
		Overview  string   `json:"overview"`
		KeyPoints []string `json:"key_points"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	overview := strings.TrimSpace(payload.Overview)
	if overview == "" {
		return nil, fmt.Errorf("%w: missing overview", ErrParse)
	}

	points := make([]string, 0, len(payload.KeyPoints))
	for _, p := range payload.KeyPoints {
		if p = strings.TrimSpace(p); p != "" {
			points = append(points, p)
		}
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no key points", ErrParse)
	}

	return &report.Summary{
		Overview:  overview,
		KeyPoints: points,
	}, nil
}

func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
