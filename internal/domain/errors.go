package domain

import "errors"

var (
	// ErrUnknownEmotion marks a data table referencing a label outside the
	// closed set. Fatal at load time.
	ErrUnknownEmotion = errors.New("unknown emotion label")

	// ErrUnknownFrame marks a trigger referencing an undefined frame.
	// Fatal at load time.
	ErrUnknownFrame = errors.New("trigger references undefined frame")

	// ErrFallbackUnavailable marks a failed or timed-out embedding fallback
	// call. Surfaced to the caller as a retryable classification failure.
	ErrFallbackUnavailable = errors.New("embedding fallback unavailable")
)
