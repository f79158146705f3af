package report

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteDocx writes the report as a styled docx document with the same
// section order as the Markdown rendering.
func WriteDocx(r *Report, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addHeading(doc, "Audio Report: "+r.Source.Name, 16)
	addLine(doc, fmt.Sprintf("Source: %s", r.Source.Name))
	addLine(doc, fmt.Sprintf("Duration: %s", FormatTimestamp(r.Source.Duration)))
	addLine(doc, fmt.Sprintf("Generated: %s", r.GeneratedAt.Format("2006-01-02 15:04:05")))
	doc.AddParagraph("")

	addHeading(doc, "Summary", 15)
	if r.Summary == nil {
		addLine(doc, "Summary unavailable for this run.")
	} else {
		addLine(doc, strings.TrimSpace(r.Summary.Overview))
		addHeading(doc, "Key Points", 14)
		for _, p := range r.Summary.KeyPoints {
			addLine(doc, "• "+strings.TrimSpace(p))
		}
	}
	doc.AddParagraph("")

	addHeading(doc, "Chapters", 15)
	for i, c := range r.Chapters {
		addLine(doc, fmt.Sprintf("%d. [%s] %s", i+1, FormatTimestamp(c.Start), c.Title))
	}
	doc.AddParagraph("")

	addHeading(doc, "Transcript", 15)
	for _, s := range r.Segments {
		addLine(doc, fmt.Sprintf("[%s] %s", FormatTimestamp(s.Start), strings.TrimSpace(s.Text)))
	}

	return doc.SaveTo(outputPath)
}

func addHeading(doc *docx.RootDoc, text string, size uint64) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(size).Color("000000").Bold(true)
}

func addLine(doc *docx.RootDoc, text string) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
}
