package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// callGemini sends the prompt to the Gemini API using the current key
// and returns the raw response text.
func (s *implSummarizer) callGemini(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.activeKey(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", classifyGeminiErr(err)
	}

	result, err := client.Models.GenerateContent(ctx, s.opts.GeminiModel, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyGeminiErr(err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response from Gemini", ErrParse)
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}

// classifyGeminiErr maps SDK errors onto the retry taxonomy. The SDK
// surfaces HTTP status through error strings, so matching follows suit.
func classifyGeminiErr(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "quota"),
		strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return fmt.Errorf("%w: %v", ErrRateLimit, err)
	case strings.Contains(msg, "401"),
		strings.Contains(msg, "403"),
		strings.Contains(msg, "API key"),
		strings.Contains(msg, "UNAUTHENTICATED"),
		strings.Contains(msg, "PERMISSION_DENIED"):
		return fmt.Errorf("%w: check GEMINI_API_KEY: %v", ErrAuth, err)
	default:
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
}
