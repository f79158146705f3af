package transcriber

import (
	"sync"

	"tinyscribe/internal/config"
	"tinyscribe/internal/logger"
	"tinyscribe/pkg/executor"
)

type implTranscriber struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger

	// The engine check runs once per process; the model is a shared
	// read-only resource across concurrent runs.
	engineOnce sync.Once
	engineErr  error
}

// New creates a new Transcriber instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
