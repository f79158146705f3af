package summarizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tinyscribe/internal/report"
)

const summaryPrompt = `You are given the full transcript of an audio recording (podcast, lecture, or meeting).

Respond with a single JSON object and nothing else, in this exact shape:
{"overview": "...", "key_points": ["...", "..."]}

Requirements:
- "overview": a concise 2-3 paragraph summary of the main content
- "key_points": 3 to 5 short takeaways, ordered by importance
- Do not wrap the JSON in markdown fences or add commentary

Transcript:
---
%s
---`

const initialBackoff = 2 * time.Second

// Summarize sends the transcript to the configured provider. Network
// and rate-limit failures are retried with bounded exponential backoff;
// auth and parse failures propagate immediately.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (*report.Summary, error) {
	prompt := fmt.Sprintf(summaryPrompt, transcript)

	delay := initialBackoff
	var lastErr error

	for attempt := 1; attempt <= s.opts.MaxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
		raw, err := s.generate(callCtx, prompt)
		cancel()

		if err == nil {
			return parseSummary(raw)
		}
		lastErr = err

		if !errors.Is(err, ErrNetwork) && !errors.Is(err, ErrRateLimit) {
			return nil, err
		}
		if errors.Is(err, ErrRateLimit) {
			s.rotateKey()
		}
		if attempt == s.opts.MaxAttempts {
			break
		}

		s.logger.Warn(ctx, "Summarization attempt %d/%d failed, retrying in %s: %v",
			attempt, s.opts.MaxAttempts, delay, err)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrNetwork, ctx.Err())
		}
		delay *= 2
	}

	return nil, fmt.Errorf("summarization failed after %d attempts: %w", s.opts.MaxAttempts, lastErr)
}

func (s *implSummarizer) generate(ctx context.Context, prompt string) (string, error) {
	switch s.opts.Provider {
	case ProviderOpenAI:
		return s.callOpenAI(ctx, prompt)
	default:
		return s.callGemini(ctx, prompt)
	}
}

// rotateKey advances to the next Gemini key after a rate limit; a
// single-key setup simply retries the same key after backoff.
func (s *implSummarizer) rotateKey() {
	if len(s.opts.GeminiKeys) <= 1 {
		return
	}
	s.mu.Lock()
	s.currentKey = (s.currentKey + 1) % len(s.opts.GeminiKeys)
	s.mu.Unlock()
}

// activeKey returns the Gemini key concurrent runs should use now.
func (s *implSummarizer) activeKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.GeminiKeys[s.currentKey]
}
