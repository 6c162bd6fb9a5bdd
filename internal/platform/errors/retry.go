package errors

// Retry semantics for calls to third-party providers

import (
	"context"
	stderrs "errors"
	"net"
)

// Retryable reports whether a call that failed with err may succeed if repeated.
// Cancellation by the caller is never retryable
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) {
		return false
	}
	if stderrs.Is(err, context.DeadlineExceeded) {
		return true
	}
	switch CodeOf(err) {
	case ErrorCodeUnavailable, ErrorCodeTooManyRequests, ErrorCodeTimeout:
		return true
	}
	var ne net.Error
	if stderrs.As(err, &ne) && ne.Timeout() {
		return true
	}
	return false
}

// FromContext maps a context failure to a project error; other errors pass through
func FromContext(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrs.Is(err, context.DeadlineExceeded):
		return Wrap(err, ErrorCodeTimeout, "deadline exceeded")
	case stderrs.Is(err, context.Canceled):
		return Wrap(err, ErrorCodeUnavailable, "request canceled")
	default:
		return err
	}
}
