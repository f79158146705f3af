package ingest

import (
	"tinyscribe/internal/logger"
	"tinyscribe/pkg/executor"
)

type implIngestor struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Ingestor instance
func New(exec executor.Executor, log logger.Logger) Ingestor {
	return &implIngestor{
		executor: exec,
		logger:   log,
	}
}
