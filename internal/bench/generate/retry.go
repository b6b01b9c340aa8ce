package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var ErrRetriesExhausted = errors.New("generate: retries exhausted")

type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// Do calls fn until it succeeds or MaxAttempts calls have failed. It returns
// the number of attempts made. Exhaustion wraps both ErrRetriesExhausted and
// the last failure.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) error) (int, error) {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return attempt - 1, err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return attempt, nil
		}
		slog.Warn("generator attempt failed", "attempt", attempt, "max_attempts", maxAttempts, "error", lastErr)

		if p.Delay > 0 && attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return attempt, ctx.Err()
			case <-time.After(p.Delay):
			}
		}
	}

	return maxAttempts, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, maxAttempts, lastErr)
}
