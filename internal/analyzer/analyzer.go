package analyzer

import (
	"context"
	"errors"
	"fmt"

	"feedbackservice/internal/llm"
	"feedbackservice/internal/logging"
	"feedbackservice/internal/model"

	"go.uber.org/zap"
)

type Repository interface {
	Get(ctx context.Context, id int64) (*model.FeedbackItem, error)
	SaveAnalysis(ctx context.Context, id int64, a model.Analysis) (*model.FeedbackItem, error)
	ListUnanalyzed(ctx context.Context) ([]*model.FeedbackItem, error)
}

type Analyzer struct {
	repo        Repository
	client      llm.Client
	maxTokens   int
	concurrency int
	logger      *logging.Logger
}

func New(repo Repository, client llm.Client, maxTokens, concurrency int, logger *logging.Logger) *Analyzer {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Analyzer{
		repo:        repo,
		client:      client,
		maxTokens:   maxTokens,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Analyze classifies one row and stores the result. Already analyzed rows
// are classified again and overwritten.
func (a *Analyzer) Analyze(ctx context.Context, id int64) (*model.FeedbackItem, error) {
	item, err := a.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.analyzeItem(ctx, item)
}

func (a *Analyzer) analyzeItem(ctx context.Context, item *model.FeedbackItem) (*model.FeedbackItem, error) {
	completion, err := a.client.Complete(ctx, BuildPrompt(item.Message), a.maxTokens)
	if err != nil {
		return nil, fmt.Errorf("analyze feedback %d: %w", item.ID, err)
	}

	analysis, err := ParseAnalysis(completion)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			a.logger.Warn(ctx, "unparsable analysis",
				zap.Int64("feedback_id", item.ID),
				zap.String("reason", pe.Reason),
				zap.String("raw", pe.Raw),
			)
		}
		return nil, err
	}

	updated, err := a.repo.SaveAnalysis(ctx, item.ID, analysis)
	if err != nil {
		return nil, err
	}
	a.logger.Debug(ctx, "feedback analyzed",
		zap.Int64("feedback_id", item.ID),
		zap.String("theme", analysis.Theme),
		zap.String("sentiment", string(analysis.Sentiment)),
		zap.String("urgency", string(analysis.Urgency)),
	)
	return updated, nil
}
