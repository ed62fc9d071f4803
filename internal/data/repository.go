package data

import (
	"context"

	"feedbackservice/internal/model"
)

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

// Repository is the feedback store. PostgresRepository and SQLiteRepository
// both implement it.
type Repository interface {
	List(ctx context.Context) ([]*model.FeedbackItem, error)
	ListAnalyzed(ctx context.Context, limit int) ([]*model.FeedbackItem, error)
	ListUnanalyzed(ctx context.Context) ([]*model.FeedbackItem, error)
	Get(ctx context.Context, id int64) (*model.FeedbackItem, error)
	SaveAnalysis(ctx context.Context, id int64, a model.Analysis) (*model.FeedbackItem, error)
	Create(ctx context.Context, input *model.CreateFeedbackInput) (*model.FeedbackItem, error)
}

var (
	_ Repository = (*PostgresRepository)(nil)
	_ Repository = (*SQLiteRepository)(nil)
)
