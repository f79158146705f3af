package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tinyscribe/internal/report"
)

// persist renders the report and writes it under the output directory.
// The filename carries the assembly timestamp so repeated runs on the
// same input never collide.
func (p *implPipeline) persist(ctx context.Context, rep *report.Report) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return "", fmt.Errorf("%w: create output dir: %v", ErrPersist, err)
	}

	base := strings.TrimSuffix(rep.Source.Name, filepath.Ext(rep.Source.Name))
	name := fmt.Sprintf("%s_%s.md", base, rep.GeneratedAt.Format("20060102_150405"))
	outPath := filepath.Join(p.cfg.Paths.Output, name)

	if err := os.WriteFile(outPath, []byte(report.Render(rep)), 0644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersist, err)
	}

	// The docx is a convenience copy; the markdown file is the durable
	// artifact, so a docx failure only warns.
	if p.cfg.Report.Docx {
		docxPath := strings.TrimSuffix(outPath, ".md") + ".docx"
		if err := report.WriteDocx(rep, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to write docx report: %v", err)
		} else {
			p.logger.Debug(ctx, "Docx report written: %s", docxPath)
		}
	}

	return outPath, nil
}
