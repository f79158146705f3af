package pipeline

import (
	"tinyscribe/internal/config"
	"tinyscribe/internal/ingest"
	"tinyscribe/internal/logger"
	"tinyscribe/internal/summarizer"
	"tinyscribe/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	ingestor    ingest.Ingestor
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New creates a new Pipeline instance. sum may be nil when no
// credential is configured; runs then abort at the summarize stage
// unless graceful degradation is enabled.
func New(cfg *config.Config, ing ingest.Ingestor, tr transcriber.Transcriber, sum summarizer.Summarizer, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		ingestor:    ing,
		transcriber: tr,
		summarizer:  sum,
		logger:      log,
	}
}
