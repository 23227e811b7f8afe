package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error so callers can attribute a failure to a
// specific stage of the planning pipeline.
type Kind string

const (
	KindInvalidInput       Kind = "invalid_input"
	KindNotFound           Kind = "not_found"
	KindOptimizationFailed Kind = "optimization_failed"
	KindRenderFailed       Kind = "render_failed"
	KindDuplicate          Kind = "duplicate"
	KindInternal           Kind = "internal"
)

// Error is the base type for all domain errors.
type Error struct {
	ErrKind Kind
	Message string
	cause   error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Kind returns the error classification.
func (e *Error) Kind() Kind { return e.ErrKind }

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// NewValidationError creates an error for malformed or missing user input.
func NewValidationError(message string) *Error {
	return &Error{ErrKind: KindInvalidInput, Message: message}
}

// NewNotFoundError creates an error for a missing entity or lookup miss.
func NewNotFoundError(entity, key string) *Error {
	return &Error{ErrKind: KindNotFound, Message: fmt.Sprintf("%s not found: %s", entity, key)}
}

// NewOptimizationError creates an error attributing a failure to the
// visit-order optimization stage.
func NewOptimizationError(message string, cause error) *Error {
	return &Error{ErrKind: KindOptimizationFailed, Message: message, cause: cause}
}

// NewRenderError creates an error attributing a failure to the path
// rendering stage.
func NewRenderError(message string, cause error) *Error {
	return &Error{ErrKind: KindRenderFailed, Message: message, cause: cause}
}

// ErrDuplicateRoute reports that a route with the same content hash already
// exists in the history. It is an informational outcome, not a failure.
var ErrDuplicateRoute = &Error{ErrKind: KindDuplicate, Message: "route already saved"}

// KindOf extracts the domain error kind, defaulting to KindInternal for
// errors that did not originate in the domain.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.ErrKind
	}
	return KindInternal
}
