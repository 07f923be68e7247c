package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport-level handling.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
	KindBusinessRule
	KindInternal
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindNotFound:
		return "NOT_FOUND"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindForbidden:
		return "FORBIDDEN"
	case KindConflict:
		return "CONFLICT"
	case KindBusinessRule:
		return "BUSINESS_RULE"
	case KindInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// Error is an error carrying a Kind. It wraps an optional cause.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an existing error.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf extracts the Kind of err, or KindUnknown if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err (or any error it wraps) has the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
