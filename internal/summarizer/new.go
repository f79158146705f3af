package summarizer

import (
	"fmt"
	"sync"
	"time"

	"tinyscribe/internal/logger"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Options configures the summarizer. Keys come from the environment,
// never from config files, and are never logged.
type Options struct {
	Provider    string
	GeminiKeys  []string
	GeminiModel string
	OpenAIKey   string
	OpenAIModel string
	MaxAttempts int
	Timeout     time.Duration
}

type implSummarizer struct {
	opts   Options
	logger logger.Logger

	// One Summarizer is shared by every concurrent run in watch mode,
	// so the rotating key index needs the lock.
	mu         sync.Mutex
	currentKey int
}

// New creates a Summarizer for the configured provider. A missing
// credential is an auth failure up front, before any transcription work
// is wasted on it.
func New(opts Options, log logger.Logger) (Summarizer, error) {
	switch opts.Provider {
	case ProviderGemini:
		if len(opts.GeminiKeys) == 0 {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrAuth)
		}
	case ProviderOpenAI:
		if opts.OpenAIKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", ErrAuth)
		}
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", opts.Provider)
	}

	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Minute
	}

	return &implSummarizer{
		opts:   opts,
		logger: log,
	}, nil
}
