package workflow

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net"
	"time"

	"feedbackservice/internal/errdefs"
)

// IsRetriable reports whether a step failure is worth another attempt.
// Delivery failures never are, even when caused by a timeout.
func IsRetriable(err error) bool {
	if errors.Is(err, errdefs.ErrDeliveryFailure) {
		return false
	}
	if errors.Is(err, errdefs.ErrModelUnavailable) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func RetryWithBackoff[T any](
	ctx context.Context,
	maxRetries int,
	baseDelay time.Duration,
	fn func() (T, error),
) (T, error) {
	var zero T
	if maxRetries <= 0 {
		return zero, fmt.Errorf("maxRetries must be > 0, got %d", maxRetries)
	}
	var lastErr error

	for i := range maxRetries {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsRetriable(err) {
			return zero, err
		}

		if i < maxRetries-1 {
			var jitter time.Duration
			if baseDelay > 0 {
				jitter = time.Duration(rand.Int63n(int64(baseDelay))) //nolint:gosec // jitter doesn't need crypto rand
			}
			delay := time.Duration(math.Pow(2, float64(i)))*baseDelay + jitter
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", maxRetries, lastErr)
}
