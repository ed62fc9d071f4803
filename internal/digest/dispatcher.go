package digest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"feedbackservice/internal/errdefs"
	"feedbackservice/internal/logging"
	"feedbackservice/internal/model"

	"go.uber.org/zap"
)

const (
	embedTitle  = "📊 Daily Feedback Digest"
	embedColor  = 0x5865f2
	embedFooter = "Feedback Analyzer • Auto-generated digest"

	ReasonNotConfigured = "No webhook URL configured"
)

type DeliveryResult struct {
	Sent   bool   `json:"sent"`
	Status int    `json:"status,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedFooterText struct {
	Text string `json:"text"`
}

type embed struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Color       int             `json:"color"`
	Fields      []embedField    `json:"fields"`
	Footer      embedFooterText `json:"footer"`
	Timestamp   string          `json:"timestamp"`
}

type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

// Dispatcher posts digests to a Discord webhook.
type Dispatcher struct {
	webhookURL string
	httpClient *http.Client
	logger     *logging.Logger
	now        func() time.Time
}

func NewDispatcher(webhookURL string, timeout time.Duration, logger *logging.Logger) *Dispatcher {
	return &Dispatcher{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

func buildPayload(summary string, stats model.DigestStats, at time.Time) webhookPayload {
	return webhookPayload{Embeds: []embed{{
		Title:       embedTitle,
		Description: summary,
		Color:       embedColor,
		Fields: []embedField{
			{Name: "📝 Total Feedback", Value: strconv.Itoa(stats.Total), Inline: true},
			{Name: "😞 Negative", Value: strconv.Itoa(stats.Negative), Inline: true},
			{Name: "🔴 High Urgency", Value: strconv.Itoa(stats.HighUrgency), Inline: true},
		},
		Footer:    embedFooterText{Text: embedFooter},
		Timestamp: at.UTC().Format("2006-01-02T15:04:05.000Z"),
	}}}
}

// Dispatch makes a single delivery attempt. A missing webhook URL is not an
// error; neither is a non-2xx answer, which is reported in the result.
func (d *Dispatcher) Dispatch(ctx context.Context, summary string, rows []*model.FeedbackItem) (DeliveryResult, error) {
	if d.webhookURL == "" {
		d.logger.Info(ctx, "digest not sent, webhook not configured")
		return DeliveryResult{Sent: false, Reason: ReasonNotConfigured}, nil
	}

	body, err := json.Marshal(buildPayload(summary, model.ComputeDigestStats(rows), d.now()))
	if err != nil {
		return DeliveryResult{}, fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return DeliveryResult{}, fmt.Errorf("%w: %w", errdefs.ErrDeliveryFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return DeliveryResult{}, fmt.Errorf("%w: %w", errdefs.ErrDeliveryFailure, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !ok {
		d.logger.Warn(ctx, "webhook rejected digest", zap.Int("status", resp.StatusCode))
	}
	return DeliveryResult{Sent: ok, Status: resp.StatusCode}, nil
}
