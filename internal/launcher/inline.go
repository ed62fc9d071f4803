package launcher

import (
	"context"
	"errors"
	"sync"

	"feedbackservice/internal/ctxdata"
	"feedbackservice/internal/logging"

	"go.uber.org/zap"
)

var ErrClosed = errors.New("launcher closed")

// InlineLauncher runs each request on its own goroutine in this process.
type InlineLauncher struct {
	runner Runner
	logger *logging.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewInlineLauncher(runner Runner, logger *logging.Logger) *InlineLauncher {
	return &InlineLauncher{runner: runner, logger: logger}
}

func (l *InlineLauncher) Launch(ctx context.Context, req Request) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}

	runCtx := ctxdata.WithTrigger(context.WithoutCancel(ctx), req.Trigger)
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		if err := l.runner.RunDigest(runCtx, req.RunID); err != nil {
			l.logger.Error(runCtx, "digest run failed", zap.String("run_id", req.RunID), zap.Error(err))
		}
	}()
	return nil
}

// Close rejects new requests and waits for running ones.
func (l *InlineLauncher) Close() error {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	l.wg.Wait()
	return nil
}
