// Package retry provides a bounded retry combinator with a fixed
// per-attempt delay schedule.
package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Schedule returns the delay to wait after a failed attempt. attempt is
// zero-based. A nil Schedule means retry immediately.
type Schedule func(attempt int) time.Duration

// Linear returns a schedule that waits step, 2*step, 3*step, ...
func Linear(step time.Duration) Schedule {
	return func(attempt int) time.Duration {
		return time.Duration(attempt+1) * step
	}
}

// Fixed returns a schedule that always waits the same duration.
func Fixed(d time.Duration) Schedule {
	return func(int) time.Duration {
		return d
	}
}

// Do runs op up to maxAttempts times. After each failure it consults
// retryable; a false return stops immediately and the error is returned
// as-is. Between attempts it sleeps per the schedule, honoring context
// cancellation. The last error is returned when the budget is exhausted.
func Do(ctx context.Context, maxAttempts int, sched Schedule, retryable func(error) bool, op func(ctx context.Context) error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		if retryable != nil && !retryable(lastErr) {
			return lastErr
		}

		if attempt == maxAttempts-1 {
			break
		}

		var delay time.Duration
		if sched != nil {
			delay = sched(attempt)
		}

		slog.Warn("Operation failed, retrying",
			"attempt", attempt+1,
			"max_attempts", maxAttempts,
			"delay", delay,
			"error", lastErr)

		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	return fmt.Errorf("exhausted %d attempts: %w", maxAttempts, lastErr)
}
