package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"feedbackservice/internal/cache"
	"feedbackservice/internal/ctxdata"
	"feedbackservice/internal/errdefs"
	"feedbackservice/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newEngine(attempts int) *Engine {
	return NewEngine(cache.NewMemoryCache(), Options{
		MaxAttempts: attempts,
		BaseDelay:   time.Millisecond,
		TTL:         time.Hour,
	}, logging.NewNop())
}

func TestEngine_CreateGet(t *testing.T) {
	ctx := context.Background()
	e := newEngine(1)

	_, err := e.Get(ctx, "nope")
	assert.ErrorIs(t, err, errdefs.ErrRunNotFound)

	created, err := e.Create(ctx, "run-1", "digest", "manual")
	require.NoError(t, err)
	assert.Equal(t, StatusQueued, created.Status)

	got, err := e.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "digest", got.Workflow)
	assert.Equal(t, "manual", got.Trigger)
	assert.Equal(t, StatusQueued, got.Status)
}

func TestEngine_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("Completed", func(t *testing.T) {
		e := newEngine(1)
		_, err := e.Create(ctx, "run-1", "digest", "manual")
		require.NoError(t, err)

		inst, err := e.Execute(ctx, "run-1", func(ctx context.Context, run *Run) (Result, error) {
			n, err := Do(ctx, run, "count", func(context.Context) (int, error) { return 3, nil })
			if err != nil {
				return Result{}, err
			}
			return Result{Output: map[string]int{"n": n}}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, inst.Status)
		assert.Equal(t, []string{"count"}, inst.Steps)
		assert.JSONEq(t, `{"n":3}`, string(inst.Output))

		stored, err := e.Get(ctx, "run-1")
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, stored.Status)
	})

	t.Run("Skipped", func(t *testing.T) {
		e := newEngine(1)
		_, err := e.Create(ctx, "run-2", "digest", "schedule")
		require.NoError(t, err)

		inst, err := e.Execute(ctx, "run-2", func(context.Context, *Run) (Result, error) {
			return Result{Skipped: true, Output: map[string]string{"reason": "nothing"}}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, StatusSkipped, inst.Status)
	})

	t.Run("ErroredThenResumed", func(t *testing.T) {
		e := newEngine(1)
		_, err := e.Create(ctx, "run-3", "digest", "manual")
		require.NoError(t, err)

		firstCalls, secondCalls := 0, 0
		failSecond := true
		body := func(ctx context.Context, run *Run) (Result, error) {
			a, err := Do(ctx, run, "first", func(context.Context) (string, error) {
				firstCalls++
				return "a", nil
			})
			if err != nil {
				return Result{}, err
			}
			b, err := Do(ctx, run, "second", func(context.Context) (string, error) {
				secondCalls++
				if failSecond {
					return "", errors.New("webhook exploded")
				}
				return "b", nil
			})
			if err != nil {
				return Result{}, err
			}
			return Result{Output: a + b}, nil
		}

		inst, err := e.Execute(ctx, "run-3", body)
		require.Error(t, err)
		assert.Equal(t, StatusErrored, inst.Status)
		assert.Contains(t, inst.Error, "webhook exploded")

		failSecond = false
		inst, err = e.Execute(ctx, "run-3", body)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, inst.Status)
		assert.Equal(t, 1, firstCalls)
		assert.Equal(t, 2, secondCalls)

		var out string
		require.NoError(t, json.Unmarshal(inst.Output, &out))
		assert.Equal(t, "ab", out)
	})

	t.Run("FinishedRunNotRepeated", func(t *testing.T) {
		e := newEngine(1)
		_, err := e.Create(ctx, "run-4", "digest", "manual")
		require.NoError(t, err)

		calls := 0
		body := func(context.Context, *Run) (Result, error) {
			calls++
			return Result{}, nil
		}
		_, err = e.Execute(ctx, "run-4", body)
		require.NoError(t, err)
		_, err = e.Execute(ctx, "run-4", body)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("UnknownRun", func(t *testing.T) {
		e := newEngine(1)
		_, err := e.Execute(ctx, "ghost", func(context.Context, *Run) (Result, error) { return Result{}, nil })
		assert.ErrorIs(t, err, errdefs.ErrRunNotFound)
	})
}

func TestDo_Retries(t *testing.T) {
	ctx := context.Background()
	e := newEngine(3)
	_, err := e.Create(ctx, "run-r", "digest", "manual")
	require.NoError(t, err)

	t.Run("RetriableRecovers", func(t *testing.T) {
		calls := 0
		_, err := e.Execute(ctx, "run-r", func(ctx context.Context, run *Run) (Result, error) {
			out, err := Do(ctx, run, "flaky", func(context.Context) (string, error) {
				calls++
				if calls < 3 {
					return "", fmt.Errorf("upstream: %w", errdefs.ErrModelUnavailable)
				}
				return "ok", nil
			})
			return Result{Output: out}, err
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("NonRetriableOnce", func(t *testing.T) {
		_, err := e.Create(ctx, "run-n", "digest", "manual")
		require.NoError(t, err)

		calls := 0
		_, err = e.Execute(ctx, "run-n", func(ctx context.Context, run *Run) (Result, error) {
			_, err := Do(ctx, run, "send", func(context.Context) (bool, error) {
				calls++
				return false, errdefs.ErrDeliveryFailure
			})
			return Result{}, err
		})
		assert.ErrorIs(t, err, errdefs.ErrDeliveryFailure)
		assert.Equal(t, 1, calls)
	})
}

func TestRetryWithBackoff(t *testing.T) {
	t.Run("InvalidAttempts", func(t *testing.T) {
		_, err := RetryWithBackoff(context.Background(), 0, time.Millisecond, func() (int, error) { return 1, nil })
		assert.Error(t, err)
	})

	t.Run("AllRetriesFail", func(t *testing.T) {
		calls := 0
		_, err := RetryWithBackoff(context.Background(), 2, time.Millisecond, func() (int, error) {
			calls++
			return 0, errdefs.ErrModelUnavailable
		})
		assert.ErrorIs(t, err, errdefs.ErrModelUnavailable)
		assert.Equal(t, 2, calls)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := RetryWithBackoff(ctx, 3, time.Millisecond, func() (int, error) { return 1, nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

type timeoutErr struct{}

func (timeoutErr) Error() string {
	return "i/o timeout"
}

func (timeoutErr) Timeout() bool {
	return true
}

func (timeoutErr) Temporary() bool {
	return true
}

var _ net.Error = timeoutErr{}

func TestIsRetriable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"ModelUnavailable", fmt.Errorf("workers ai: %w", errdefs.ErrModelUnavailable), true},
		{"NetworkTimeout", fmt.Errorf("post: %w", timeoutErr{}), true},
		{"DeliveryTimeout", fmt.Errorf("%w: %w", errdefs.ErrDeliveryFailure, timeoutErr{}), false},
		{"ParseError", errdefs.ErrAnalysisParse, false},
		{"Plain", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetriable(tt.err))
		})
	}
}

func TestEngine_ExecuteLogsWithContextLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logging.ContextWithLogger(context.Background(), logging.New(zap.New(core)))
	ctx = ctxdata.WithTrigger(ctx, TriggerSchedule)

	e := newEngine(1)
	_, err := e.Create(ctx, "run-log", "digest", TriggerSchedule)
	require.NoError(t, err)

	_, err = e.Execute(ctx, "run-log", func(context.Context, *Run) (Result, error) {
		return Result{}, nil
	})
	require.NoError(t, err)

	entries := logs.FilterMessage("run finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "run-log", fields["run_id"])
	assert.Equal(t, TriggerSchedule, fields["trigger"])
}
