// Package retry implements bounded retry with exponential backoff for calls
// to external collaborators (the embedding model server, the OpenAI API).
package retry

import (
	"context"
	"fmt"
	"time"
)

// Action tells Do how to treat a failed attempt.
type Action int

const (
	// Stop marks a permanent error; Do aborts immediately.
	Stop Action = iota
	// Retry marks a transient error; Do backs off and tries again.
	Retry
	// After marks a rate-limited error; Do uses the longer backoff.
	After
)

// Classify maps an error to an Action.
type Classify func(err error) Action

// Operation is the retried call.
type Operation[T any] func() (T, error)

// Policy bounds the retry loop.
type Policy struct {
	MaxAttempts      int
	InitialBackoff   time.Duration
	RateLimitBackoff time.Duration
	OnRetry          func(attempt int, err error, backoff time.Duration)
}

// Do runs op up to MaxAttempts times, doubling the backoff after each
// transient failure. A Stop classification returns a PermanentError carrying
// the cause. Context cancellation aborts the wait between attempts.
func Do[T any](ctx context.Context, p Policy, classify Classify, op Operation[T]) (T, error) {
	var zero T
	backoff := p.InitialBackoff

	for attempt := 1; ; attempt++ {
		val, err := op()
		if err == nil {
			return val, nil
		}

		switch classify(err) {
		case Stop:
			return zero, &PermanentError{Err: err}
		case After:
			backoff = p.RateLimitBackoff
		}

		if attempt >= p.MaxAttempts {
			return zero, fmt.Errorf("failed after %d attempts: %w", p.MaxAttempts, err)
		}

		if p.OnRetry != nil {
			p.OnRetry(attempt, err, backoff)
		}

		select {
		case <-time.After(backoff):
			backoff *= 2
		case <-ctx.Done():
			return zero, fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}
}

// PermanentError wraps an error the classifier ruled out for retrying.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }
