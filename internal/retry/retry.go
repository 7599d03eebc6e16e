// Package retry runs an operation under a bounded retry policy.
package retry

import (
	"context"
	"math"
	"time"
)

// Policy describes how often and how long to wait between attempts.
type Policy struct {
	// MaxRetries is the number of attempts allowed after the first one.
	MaxRetries int
	// Delay returns the wait before retry number attempt (1-based).
	Delay func(attempt int) time.Duration
	// Sleep waits for d or until ctx is done. Defaults to a timer wait.
	Sleep func(ctx context.Context, d time.Duration) error
	// OnRetry, if set, is called before each wait.
	OnRetry func(attempt int, delay time.Duration, err error)
}

// Exponential returns a delay of 2^attempt * base.
func Exponential(base time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(math.Pow(2, float64(attempt))) * base
	}
}

// Default is two retries with 2s and 4s waits.
func Default() Policy {
	return Policy{MaxRetries: 2, Delay: Exponential(time.Second)}
}

// Do calls fn until it succeeds or the policy is exhausted. The error of
// the last attempt is returned unchanged. Cancelling ctx stops further
// attempts; the last attempt's error is still what gets returned.
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	sleep := p.Sleep
	if sleep == nil {
		sleep = Sleep
	}
	delay := p.Delay
	if delay == nil {
		delay = Exponential(time.Second)
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if attempt >= p.MaxRetries || ctx.Err() != nil {
			return zero, lastErr
		}

		wait := delay(attempt + 1)
		if p.OnRetry != nil {
			p.OnRetry(attempt+1, wait, err)
		}
		if err := sleep(ctx, wait); err != nil {
			return zero, lastErr
		}
	}
}

// Sleep blocks for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
