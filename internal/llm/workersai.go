package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"feedbackservice/internal/errdefs"
	"feedbackservice/internal/logging"

	"go.uber.org/zap"
)

type WorkersAIConfig struct {
	BaseURL   string
	AccountID string
	APIToken  string
	Model     string
	Timeout   time.Duration
}

// WorkersAIClient calls the Cloudflare Workers AI text generation endpoint.
type WorkersAIClient struct {
	baseURL    string
	accountID  string
	apiToken   string
	model      string
	httpClient *http.Client
	logger     *logging.Logger
}

type workersAIRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type workersAIResponse struct {
	Result struct {
		Response string `json:"response"`
	} `json:"result"`
	Success bool `json:"success"`
	Errors  []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func NewWorkersAIClient(cfg WorkersAIConfig, logger *logging.Logger) *WorkersAIClient {
	return &WorkersAIClient{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		accountID: cfg.AccountID,
		apiToken:  cfg.APIToken,
		model:     cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

func (c *WorkersAIClient) endpoint() string {
	return fmt.Sprintf("%s/accounts/%s/ai/run/%s", c.baseURL, c.accountID, c.model)
}

func (c *WorkersAIClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if c.accountID == "" || c.apiToken == "" {
		return "", fmt.Errorf("workers ai credentials: %w", errdefs.ErrUnconfigured)
	}

	start := time.Now()
	jsonData, err := json.Marshal(workersAIRequest{Prompt: prompt, MaxTokens: maxTokens})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %w", errdefs.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %w", errdefs.ErrModelUnavailable, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		c.logger.Warn(ctx, "workers ai unavailable",
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", time.Since(start)),
		)
		return "", fmt.Errorf("%w: status %d", errdefs.ErrModelUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("workers ai request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var out workersAIResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if !out.Success && len(out.Errors) > 0 {
		return "", fmt.Errorf("workers ai error %d: %s", out.Errors[0].Code, out.Errors[0].Message)
	}

	c.logger.Debug(ctx, "workers ai completion",
		zap.String("model", c.model),
		zap.Int("response_len", len(out.Result.Response)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out.Result.Response, nil
}
