// Package resilience retries transient failures with exponential backoff.
package resilience

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// Policy defines the retry behavior for an operation.
type Policy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int

	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Jitter scales each delay by a random factor in [0.5, 1.5).
	Jitter bool
}

// DefaultPolicy is used for object storage uploads.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: 3,
		BaseDelay:  200 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Jitter:     true,
	}
}

// permanentError marks an error that must not be retried.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() error { return e.err }

// Permanent wraps err so Retry returns it without further attempts.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err was wrapped by Permanent.
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// Retry calls fn until it succeeds, returns a permanent or context error,
// or the retries are used up. The last error is returned with any
// Permanent wrapper removed.
func Retry(ctx context.Context, p Policy, fn func(context.Context) error) error {
	var lastErr error

	attempts := max(p.MaxRetries, 0) + 1
	for attempt := range attempts {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) {
			break
		}

		if attempt < attempts-1 {
			t := time.NewTimer(Backoff(attempt, p.BaseDelay, p.MaxDelay, p.Jitter))
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}
	}

	var perm *permanentError
	if errors.As(lastErr, &perm) {
		return perm.err
	}
	return lastErr
}

// Backoff returns baseDelay * 2^attempt capped at maxDelay, optionally
// scaled by jitter. Non-positive delays fall back to 100ms and 30s.
func Backoff(attempt int, baseDelay, maxDelay time.Duration, jitter bool) time.Duration {
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}
	if maxDelay <= 0 {
		maxDelay = 30 * time.Second
	}

	delay := baseDelay
	for range attempt {
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
			break
		}
	}

	if jitter {
		delay = time.Duration(float64(delay) * (0.5 + rand.Float64()))
	}

	return min(delay, maxDelay)
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return !IsPermanent(err)
}
