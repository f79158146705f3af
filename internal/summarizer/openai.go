package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// callOpenAI sends the prompt as a single-turn chat completion.
func (s *implSummarizer) callOpenAI(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(s.opts.OpenAIKey)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.opts.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", classifyOpenAIErr(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response from OpenAI", ErrParse)
	}
	return resp.Choices[0].Message.Content, nil
}

// classifyOpenAIErr maps API errors onto the retry taxonomy using the
// HTTP status the SDK exposes.
func classifyOpenAIErr(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: check OPENAI_API_KEY: %v", ErrAuth, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimit, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
