// Package retry implements a small generic retry policy: a bounded number of
// attempts, a backoff schedule, and a predicate deciding which errors are
// worth retrying.
package retry

import (
	"context"
	"time"
)

// Policy parameterizes Do. The zero value retries nothing.
type Policy struct {
	// MaxAttempts is the total number of calls, including the first one.
	MaxAttempts int

	// Backoff returns the delay before attempt n+1. The attempt index starts
	// at 0 for the delay after the first failure.
	Backoff func(attempt int) time.Duration

	// Retryable reports whether an error should be retried. A nil predicate
	// retries every error.
	Retryable func(err error) bool
}

// ExponentialBackoff doubles the delay per attempt, capped at max.
func ExponentialBackoff(base, max time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		d := base << attempt
		if d > max || d <= 0 {
			return max
		}
		return d
	}
}

// Do runs fn until it succeeds, returns a non-retryable error, or the policy
// is exhausted. The sleep between attempts honors ctx cancellation.
func Do[T any](ctx context.Context, p Policy, fn func() (T, error)) (T, error) {
	var zero T
	var err error

	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		var v T
		v, err = fn()
		if err == nil {
			return v, nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return zero, err
		}
		if attempt == p.MaxAttempts-1 {
			break
		}

		var delay time.Duration
		if p.Backoff != nil {
			delay = p.Backoff(attempt)
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}
	return zero, err
}
