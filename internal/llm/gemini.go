package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"feedbackservice/internal/errdefs"

	"google.golang.org/genai"
)

// GeminiClient runs completions through the Google GenAI SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key: %w", errdefs.ErrUnconfigured)
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			MaxOutputTokens: int32(maxTokens),
		},
	)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError) {
			return "", fmt.Errorf("%w: %w", errdefs.ErrModelUnavailable, err)
		}
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	return resp.Text(), nil
}
