package launcher

import (
	"context"
	"time"
)

//go:generate mockgen -source=launcher.go -destination=../mocks/launcher_mock.go -package=mocks

// Request asks for one digest run to be executed.
type Request struct {
	RunID       string    `json:"run_id"`
	Trigger     string    `json:"trigger"`
	RequestedAt time.Time `json:"requested_at"`
}

type Launcher interface {
	Launch(ctx context.Context, req Request) error
	Close() error
}

type Runner interface {
	RunDigest(ctx context.Context, runID string) error
}
