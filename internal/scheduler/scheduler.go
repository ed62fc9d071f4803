package scheduler

import (
	"context"
	"time"

	"feedbackservice/internal/logging"
	"feedbackservice/internal/workflow"

	"go.uber.org/zap"
)

type DigestStarter interface {
	StartDigest(ctx context.Context, trigger string) (*workflow.Instance, error)
}

// DigestWorker starts a digest run every interval.
type DigestWorker struct {
	starter  DigestStarter
	logger   *logging.Logger
	interval time.Duration
}

func NewDigestWorker(starter DigestStarter, logger *logging.Logger, interval time.Duration) *DigestWorker {
	return &DigestWorker{
		starter:  starter,
		logger:   logger,
		interval: interval,
	}
}

// Start blocks until ctx is done. A non-positive interval disables it.
func (w *DigestWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info(ctx, "Digest worker disabled")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Digest worker stopped")
			return
		case <-ticker.C:
			w.startDigest(ctx)
		}
	}
}

func (w *DigestWorker) startDigest(ctx context.Context) {
	inst, err := w.starter.StartDigest(ctx, workflow.TriggerSchedule)
	if err != nil {
		w.logger.Error(ctx, "Failed to start scheduled digest", zap.Error(err))
		return
	}
	w.logger.Info(ctx, "Scheduled digest started", zap.String("run_id", inst.ID))
}
