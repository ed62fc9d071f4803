package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"feedbackservice/internal/model"
)

// SQLiteRepository stores feedback in an embedded sqlite database. created_at
// is kept as unix milliseconds.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*model.FeedbackItem, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback ORDER BY created_at DESC, id DESC`
	return r.queryItems(ctx, query)
}

func (r *SQLiteRepository) ListAnalyzed(ctx context.Context, limit int) ([]*model.FeedbackItem, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE theme IS NOT NULL ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		return r.queryItems(ctx, query+` LIMIT ?`, limit)
	}
	return r.queryItems(ctx, query)
}

func (r *SQLiteRepository) ListUnanalyzed(ctx context.Context) ([]*model.FeedbackItem, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE theme IS NULL ORDER BY created_at ASC, id ASC`
	return r.queryItems(ctx, query)
}

func (r *SQLiteRepository) Get(ctx context.Context, id int64) (*model.FeedbackItem, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE id = ?`
	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, handleError(err)
	}
	return item, nil
}

func (r *SQLiteRepository) SaveAnalysis(ctx context.Context, id int64, a model.Analysis) (*model.FeedbackItem, error) {
	query := `
		UPDATE feedback
		SET theme = ?, sentiment = ?, urgency = ?, summary = ?
		WHERE id = ?
		RETURNING ` + feedbackColumns
	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		a.Theme,
		string(a.Sentiment),
		string(a.Urgency),
		a.Summary,
		id,
	))
	if err != nil {
		return nil, handleError(err)
	}
	return item, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, input *model.CreateFeedbackInput) (*model.FeedbackItem, error) {
	return r.createAt(ctx, input, time.Now())
}

func (r *SQLiteRepository) createAt(ctx context.Context, input *model.CreateFeedbackInput, createdAt time.Time) (*model.FeedbackItem, error) {
	query := `
		INSERT INTO feedback (message, source, created_at)
		VALUES (?, ?, ?)
		RETURNING ` + feedbackColumns
	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		input.Message,
		string(input.Source),
		createdAt.UnixMilli(),
	))
	if err != nil {
		return nil, handleError(err)
	}
	return item, nil
}

func (r *SQLiteRepository) queryItems(ctx context.Context, query string, args ...any) ([]*model.FeedbackItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*model.FeedbackItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*model.FeedbackItem, error) {
	var (
		item                               model.FeedbackItem
		source                             string
		theme, sentiment, urgency, summary sql.NullString
		createdAt                          int64
	)
	err := row.Scan(
		&item.ID,
		&item.Message,
		&source,
		&theme,
		&sentiment,
		&urgency,
		&summary,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	item.Source = model.Source(source)
	item.CreatedAt = time.UnixMilli(createdAt).UTC()
	if theme.Valid {
		item.Theme = &theme.String
	}
	if sentiment.Valid {
		s := model.Sentiment(sentiment.String)
		item.Sentiment = &s
	}
	if urgency.Valid {
		u := model.Urgency(urgency.String)
		item.Urgency = &u
	}
	if summary.Valid {
		item.Summary = &summary.String
	}
	return &item, nil
}
