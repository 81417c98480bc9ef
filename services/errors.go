package services

import (
	"errors"
	"fmt"
)

var (
	// ErrCourseNotFound means the target course does not exist
	ErrCourseNotFound = errors.New("course not found")

	// ErrStoreUnavailable wraps network or backend failures from the
	// document store. Callers surface it and let the user retry manually.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotImplemented marks the single-review deletion path, which
	// needs backend support for rating recalculation and is a
	// deliberate stub.
	ErrNotImplemented = errors.New("review deletion requires backend support")
)

// ValidationError reports a submission rejected before any store call
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
