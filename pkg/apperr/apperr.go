package apperr

import (
	"fmt"
	"net/http"
)

// Kind classifies application errors for HTTP mapping and logging
type Kind string

const (
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindInternal     Kind = "internal"
)

// Error is a structured application error carrying the HTTP status it maps to.
// Internal holds the underlying cause and is never serialized to clients.
type Error struct {
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	Internal   error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Internal.Error())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Internal
}

// NewValidation creates a validation error (400)
func NewValidation(message string) *Error {
	return &Error{
		Kind:       KindValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewConflict creates a conflict error. Maps to 400 rather than 409 because
// the public contract reports duplicate signups as a plain bad request.
func NewConflict(message string) *Error {
	return &Error{
		Kind:       KindConflict,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewUnauthorized creates an authentication error (401)
func NewUnauthorized(message string) *Error {
	return &Error{
		Kind:       KindUnauthorized,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewForbidden creates an authorization error (403)
func NewForbidden(message string) *Error {
	return &Error{
		Kind:       KindForbidden,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

// NewNotFound creates a not found error (404)
func NewNotFound(message string) *Error {
	return &Error{
		Kind:       KindNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewInternal creates an internal server error (500). The client sees only
// message; cause stays on the server side for logging.
func NewInternal(message string, cause error) *Error {
	return &Error{
		Kind:       KindInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Internal:   cause,
	}
}

// From returns err as an *Error, wrapping unknown errors as internal
func From(err error) *Error {
	if appErr, ok := err.(*Error); ok {
		return appErr
	}
	return NewInternal("Internal server error", err)
}
