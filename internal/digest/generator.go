package digest

import (
	"context"
	"fmt"
	"strings"

	"feedbackservice/internal/errdefs"
	"feedbackservice/internal/llm"
	"feedbackservice/internal/model"
)

type Generator struct {
	client   llm.Client
	insights Profile
	daily    Profile
}

func NewGenerator(client llm.Client, insights, daily Profile) *Generator {
	return &Generator{client: client, insights: insights, daily: daily}
}

// Insights is the on-demand executive summary.
func (g *Generator) Insights(ctx context.Context, rows []*model.FeedbackItem) (string, error) {
	return g.Generate(ctx, g.insights, rows)
}

// Daily is the summary posted with the digest.
func (g *Generator) Daily(ctx context.Context, rows []*model.FeedbackItem) (string, error) {
	return g.Generate(ctx, g.daily, rows)
}

// Generate returns the model's text for rows verbatim. rows must hold at
// least one analyzed item.
func (g *Generator) Generate(ctx context.Context, p Profile, rows []*model.FeedbackItem) (string, error) {
	if len(rows) == 0 {
		return "", errdefs.ErrNoAnalyzedFeedback
	}
	text, err := g.client.Complete(ctx, p.Prompt(rows), p.MaxTokens)
	if err != nil {
		return "", fmt.Errorf("generate %s summary: %w", p.Name, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("generate %s summary: %w", p.Name, errdefs.ErrEmptyCompletion)
	}
	return text, nil
}
