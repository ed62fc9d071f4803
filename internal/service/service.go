//go:generate mockgen -source=service.go -destination=../mocks/service_mock.go -package=mocks

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"feedbackservice/internal/data"
	"feedbackservice/internal/digest"
	"feedbackservice/internal/errdefs"
	"feedbackservice/internal/launcher"
	"feedbackservice/internal/logging"
	"feedbackservice/internal/model"
	"feedbackservice/internal/workflow"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxMessageLength = 4000

type Analyzer interface {
	Analyze(ctx context.Context, id int64) (*model.FeedbackItem, error)
	Backfill(ctx context.Context) (*model.BackfillReport, error)
}

type FeedbackService struct {
	repo      data.Repository
	analyzer  Analyzer
	generator *digest.Generator
	engine    *workflow.Engine
	launcher  launcher.Launcher
	logger    *logging.Logger
	now       func() time.Time
}

func NewFeedbackService(
	repo data.Repository,
	analyzer Analyzer,
	generator *digest.Generator,
	engine *workflow.Engine,
	launcher launcher.Launcher,
	logger *logging.Logger,
) *FeedbackService {
	return &FeedbackService{
		repo:      repo,
		analyzer:  analyzer,
		generator: generator,
		engine:    engine,
		launcher:  launcher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *FeedbackService) ListFeedback(ctx context.Context) ([]*model.FeedbackItem, error) {
	return s.repo.List(ctx)
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, input *model.CreateFeedbackInput) (*model.FeedbackItem, error) {
	message := strings.TrimSpace(input.Message)
	source := model.Source(strings.ToLower(strings.TrimSpace(string(input.Source))))
	if message == "" {
		return nil, fmt.Errorf("message is required: %w", errdefs.ErrInvalidArgument)
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("message longer than %d bytes: %w", maxMessageLength, errdefs.ErrInvalidArgument)
	}
	if source == "" {
		return nil, fmt.Errorf("source is required: %w", errdefs.ErrInvalidArgument)
	}

	item, err := s.repo.Create(ctx, &model.CreateFeedbackInput{Message: message, Source: source})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "feedback created", zap.Int64("feedback_id", item.ID), zap.String("source", string(item.Source)))
	return item, nil
}

func (s *FeedbackService) AnalyzeFeedback(ctx context.Context, id int64) (*model.FeedbackItem, error) {
	// ids start at 1, so anything lower can only be an unknown row.
	if id <= 0 {
		return nil, fmt.Errorf("feedback %d: %w", id, errdefs.ErrNotFound)
	}
	return s.analyzer.Analyze(ctx, id)
}

func (s *FeedbackService) BackfillAnalysis(ctx context.Context) (*model.BackfillReport, error) {
	return s.analyzer.Backfill(ctx)
}

// Summarize covers every analyzed row, unlike the digest job which is capped.
func (s *FeedbackService) Summarize(ctx context.Context) (string, error) {
	rows, err := s.repo.ListAnalyzed(ctx, 0)
	if err != nil {
		return "", err
	}
	return s.generator.Insights(ctx, rows)
}

// StartDigest records a queued run and hands it to the launcher.
func (s *FeedbackService) StartDigest(ctx context.Context, trigger string) (*workflow.Instance, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate run ID: %w", err)
	}

	inst, err := s.engine.Create(ctx, id.String(), digest.WorkflowName, trigger)
	if err != nil {
		return nil, err
	}

	err = s.launcher.Launch(ctx, launcher.Request{
		RunID:       inst.ID,
		Trigger:     trigger,
		RequestedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch digest run %s: %w", inst.ID, err)
	}
	s.logger.Info(ctx, "digest run started", zap.String("run_id", inst.ID), zap.String("trigger", trigger))
	return inst, nil
}

func (s *FeedbackService) GetDigestRun(ctx context.Context, id string) (*workflow.Instance, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errdefs.ErrRunNotFound
	}
	return s.engine.Get(ctx, id)
}
