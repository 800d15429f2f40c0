// internal/pkg/apperror/apperror.go
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure into one of the stable, machine-checkable reasons
// callers are allowed to branch on.
type Kind string

const (
	KindValidation      Kind = "VALIDATION"
	KindNotFound        Kind = "NOT_FOUND"
	KindConflict        Kind = "CONFLICT"
	KindStoreFailure    Kind = "STORE_FAILURE"
	KindUpstreamFailure Kind = "UPSTREAM_FAILURE"
)

// Error carries a kind, a stable reason string for clients and the underlying
// cause for operators. The cause text must not be assumed parseable by clients.
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// Unwrap exposes the underlying cause for errors.Is/As chains
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind with a stable reason
func New(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

// Newf creates an error with a formatted reason
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// Wrap attaches an underlying cause to a kinded error
func Wrap(kind Kind, reason string, err error) *Error {
	return &Error{Kind: kind, Reason: reason, Err: err}
}

// Validation is shorthand for a VALIDATION error
func Validation(reason string) *Error {
	return New(KindValidation, reason)
}

// NotFound is shorthand for a NOT_FOUND error
func NotFound(reason string) *Error {
	return New(KindNotFound, reason)
}

// Conflict is shorthand for a CONFLICT error
func Conflict(reason string, err error) *Error {
	return Wrap(KindConflict, reason, err)
}

// Store wraps a transaction/connection failure
func Store(reason string, err error) *Error {
	return Wrap(KindStoreFailure, reason, err)
}

// Upstream wraps a non-fatal collaborator failure
func Upstream(reason string, err error) *Error {
	return Wrap(KindUpstreamFailure, reason, err)
}

// KindOf returns the kind of err, or an empty Kind for untyped errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// ReasonOf returns the stable reason of err, or its plain text for untyped errors
func ReasonOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
