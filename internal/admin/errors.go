package admin

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy means another submit or remove is still in flight; the second
	// intent is rejected instead of queued.
	ErrBusy = errors.New("another operation is in flight")

	// ErrStaleItem means BeginEdit targeted an ID no longer present in the
	// mirror, e.g. after a concurrent delete.
	ErrStaleItem = errors.New("item no longer exists")

	// ErrNoDraft means Submit was called outside creating/editing mode.
	ErrNoDraft = errors.New("no draft in progress")
)

// ValidationError blocks a submit before any network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q %s", e.Field, e.Reason)
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}
