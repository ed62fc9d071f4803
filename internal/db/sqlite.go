package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS feedback (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    message    TEXT NOT NULL,
    source     TEXT NOT NULL,
    theme      TEXT,
    sentiment  TEXT,
    urgency    TEXT,
    summary    TEXT,
    created_at INTEGER NOT NULL,
    CHECK (
        (theme IS NULL AND sentiment IS NULL AND urgency IS NULL AND summary IS NULL)
        OR
        (theme IS NOT NULL AND sentiment IS NOT NULL AND urgency IS NOT NULL AND summary IS NOT NULL)
    )
);
CREATE INDEX IF NOT EXISTS feedback_created_at_idx ON feedback (created_at DESC);
`

// NewSQLite opens (and creates when missing) the embedded feedback store.
// Use ":memory:" for a throwaway database.
func NewSQLite(ctx context.Context, path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// ":memory:" databases live per connection.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}
	if _, err := conn.ExecContext(ctx, sqliteSchema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to apply sqlite schema: %w", err)
	}
	return conn, nil
}
