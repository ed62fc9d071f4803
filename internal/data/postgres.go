package data

import (
	"context"
	"time"

	"feedbackservice/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const feedbackColumns = `id, message, source, theme, sentiment, urgency, summary, created_at`

// Querier defines pgxpool.Pool + pgxscan-compatible interface.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresRepository stores feedback in postgres.
type PostgresRepository struct {
	db Querier
}

func NewPostgresRepository(db Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every row, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*model.FeedbackItem, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback ORDER BY created_at DESC, id DESC`
	return r.selectItems(ctx, query)
}

// ListAnalyzed returns analyzed rows, newest first. limit <= 0 means no limit.
func (r *PostgresRepository) ListAnalyzed(ctx context.Context, limit int) ([]*model.FeedbackItem, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE theme IS NOT NULL ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		return r.selectItems(ctx, query+` LIMIT $1`, limit)
	}
	return r.selectItems(ctx, query)
}

// ListUnanalyzed returns rows with a null theme, oldest first.
func (r *PostgresRepository) ListUnanalyzed(ctx context.Context) ([]*model.FeedbackItem, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE theme IS NULL ORDER BY created_at ASC, id ASC`
	return r.selectItems(ctx, query)
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*model.FeedbackItem, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE id = $1`
	item := &model.FeedbackItem{}
	if err := pgxscan.Get(ctx, r.db, item, query, id); err != nil {
		return nil, handleError(err)
	}
	return item, nil
}

// SaveAnalysis writes all four analysis columns in one statement.
func (r *PostgresRepository) SaveAnalysis(ctx context.Context, id int64, a model.Analysis) (*model.FeedbackItem, error) {
	query := `
		UPDATE feedback
		SET theme = $1, sentiment = $2, urgency = $3, summary = $4
		WHERE id = $5
		RETURNING ` + feedbackColumns
	item := &model.FeedbackItem{}
	err := pgxscan.Get(ctx, r.db, item, query,
		a.Theme,
		string(a.Sentiment),
		string(a.Urgency),
		a.Summary,
		id,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return item, nil
}

func (r *PostgresRepository) Create(ctx context.Context, input *model.CreateFeedbackInput) (*model.FeedbackItem, error) {
	query := `
		INSERT INTO feedback (message, source, created_at)
		VALUES ($1, $2, $3)
		RETURNING ` + feedbackColumns
	item := &model.FeedbackItem{}
	err := pgxscan.Get(ctx, r.db, item, query,
		input.Message,
		string(input.Source),
		time.Now(),
	)
	if err != nil {
		return nil, handleError(err)
	}
	return item, nil
}

func (r *PostgresRepository) selectItems(ctx context.Context, query string, args ...any) ([]*model.FeedbackItem, error) {
	items := make([]*model.FeedbackItem, 0)
	if err := pgxscan.Select(ctx, r.db, &items, query, args...); err != nil {
		return nil, handleError(err)
	}
	return items, nil
}
