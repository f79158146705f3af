package summarizer

import "errors"

var (
	// ErrNetwork covers connectivity failures; retried with backoff.
	ErrNetwork = errors.New("summarization network failure")

	// ErrAuth covers missing or rejected credentials; never retried.
	ErrAuth = errors.New("summarization auth failure")

	// ErrRateLimit covers quota exhaustion; retried with backoff and,
	// for Gemini, key rotation.
	ErrRateLimit = errors.New("summarization rate limited")

	// ErrParse covers responses that do not contain a usable summary.
	// Retrying would resend the same content, so it is fatal.
	ErrParse = errors.New("malformed summary response")
)
