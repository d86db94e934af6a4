// Package retry provides a generic exponential backoff wrapper for fallible operations.
package retry

import (
	"context"
	"time"
)

// Options controls the retry schedule.
type Options struct {
	MaxRetries   int           // Additional attempts after the first one
	InitialDelay time.Duration // Wait before the first retry
	MaxDelay     time.Duration // Upper bound for the doubled delay
}

// Do invokes op up to MaxRetries+1 times. After each failure it waits for the
// current delay, which starts at InitialDelay and doubles up to MaxDelay.
// The error of the final attempt is returned unchanged.
func Do[T any](ctx context.Context, opts Options, op func(context.Context) (T, error)) (T, error) {
	var zero T

	maxRetries := opts.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	delay := opts.InitialDelay
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == maxRetries {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}

		delay = nextDelay(delay, opts.MaxDelay)
	}

	return zero, lastErr
}

// nextDelay doubles the delay, capped at maxDelay when it is set.
func nextDelay(delay, maxDelay time.Duration) time.Duration {
	next := delay * 2
	if maxDelay > 0 && next > maxDelay {
		return maxDelay
	}
	return next
}
