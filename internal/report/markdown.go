package report

import (
	"fmt"
	"strings"
)

// summaryUnavailable is rendered in place of the summary section when a
// degraded run produced no summary.
const summaryUnavailable = "_Summary unavailable for this run._"

// Render serializes a Report to Markdown. The section order is fixed:
// header, summary, chapters, transcript. Rendering is deterministic;
// identical reports always produce byte-identical output.
func Render(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Audio Report: %s\n\n", r.Source.Name)
	fmt.Fprintf(&b, "- Source: `%s`\n", r.Source.Name)
	fmt.Fprintf(&b, "- Duration: %s\n", FormatTimestamp(r.Source.Duration))
	fmt.Fprintf(&b, "- Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	b.WriteString("\n---\n\n")

	b.WriteString("## Summary\n\n")
	if r.Summary == nil {
		b.WriteString(summaryUnavailable + "\n\n")
	} else {
		b.WriteString(strings.TrimSpace(r.Summary.Overview) + "\n\n")
		b.WriteString("### Key Points\n\n")
		for _, p := range r.Summary.KeyPoints {
			fmt.Fprintf(&b, "- %s\n", strings.TrimSpace(p))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Chapters\n\n")
	for i, c := range r.Chapters {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, FormatTimestamp(c.Start), c.Title)
	}
	b.WriteString("\n## Transcript\n\n")
	for _, s := range r.Segments {
		fmt.Fprintf(&b, "[%s] %s\n", FormatTimestamp(s.Start), strings.TrimSpace(s.Text))
	}

	return b.String()
}

// FormatTimestamp converts seconds to zero-padded HH:MM:SS, truncating
// sub-second precision. The hour component is unbounded; audio longer
// than a day renders as 25:00:00, never wrapping.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int64(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
