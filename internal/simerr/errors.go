// Package simerr defines the closed error taxonomy shared by every
// simulator: a failure is always one of a small set of kinds carrying a
// human-readable message, never a raw internal error.
package simerr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	// KindValidation marks structurally malformed input, rejected before
	// any referential or business-rule check.
	KindValidation Kind = "validation_error"
	// KindInvalidRequest marks well-formed input with a wrong value, range
	// or state (mutually exclusive parameters, bad transition, etc.).
	KindInvalidRequest Kind = "invalid_request_error"
	// KindNotFound marks a referenced ID that does not exist in its
	// collection.
	KindNotFound Kind = "resource_not_found_error"
	// KindSchema marks a store missing an expected collection. This is an
	// internal precondition failure, not user error.
	KindSchema Kind = "database_schema_error"
	// KindAPI is the catch-all for unexpected internal failures surfaced
	// with an explanatory message instead of a panic.
	KindAPI Kind = "api_error"
)

type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func InvalidRequest(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Schema(format string, args ...any) *Error {
	return &Error{Kind: KindSchema, Message: fmt.Sprintf(format, args...)}
}

func API(format string, args ...any) *Error {
	return &Error{Kind: KindAPI, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the taxonomy kind of err, or KindAPI for anything that
// escaped the taxonomy.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindAPI
}

func IsKind(err error, k Kind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == k
}
