package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"feedbackservice/internal/model"
	"feedbackservice/internal/workflow"
)

// APIError is a non-2xx answer from the feedback service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the feedback service HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type DigestHandle struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func (c *Client) ListFeedback(ctx context.Context) ([]*model.FeedbackItem, error) {
	var items []*model.FeedbackItem
	if err := c.do(ctx, http.MethodGet, "/api/feedback", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Analyze(ctx context.Context, id int64) (*model.FeedbackItem, error) {
	var item model.FeedbackItem
	if err := c.do(ctx, http.MethodPost, "/api/analyze", map[string]int64{"id": id}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) Backfill(ctx context.Context) (*model.BackfillReport, error) {
	var report model.BackfillReport
	if err := c.do(ctx, http.MethodPost, "/api/analyze/backfill", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) Summary(ctx context.Context) (string, error) {
	var resp struct {
		Summary string `json:"summary"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/summary", nil, &resp); err != nil {
		return "", err
	}
	return resp.Summary, nil
}

func (c *Client) SendDigest(ctx context.Context) (*DigestHandle, error) {
	var handle DigestHandle
	if err := c.do(ctx, http.MethodPost, "/api/send-digest", nil, &handle); err != nil {
		return nil, err
	}
	return &handle, nil
}

func (c *Client) GetDigest(ctx context.Context, id string) (*workflow.Instance, error) {
	var inst workflow.Instance
	if err := c.do(ctx, http.MethodGet, "/api/digests/"+url.PathEscape(id), nil, &inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		msg := strings.TrimSpace(string(data))
		if json.Unmarshal(data, &errBody) == nil && errBody.Error != "" {
			msg = errBody.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
