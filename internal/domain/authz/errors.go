package authz

import (
	"errors"
	"net/http"
)

// ErrorKind classifies every failure the core can report. The core never
// panics or returns transport errors; callers map kinds to responses.
type ErrorKind string

const (
	ErrorUnauthenticated   ErrorKind = "unauthenticated"
	ErrorForbidden         ErrorKind = "forbidden"
	ErrorConflict          ErrorKind = "conflict"
	ErrorInvalidTransition ErrorKind = "invalid_transition"
	ErrorValidation        ErrorKind = "validation_error"
)

func (k ErrorKind) HTTPStatus() int {
	switch k {
	case ErrorUnauthenticated:
		return http.StatusUnauthorized
	case ErrorForbidden:
		return http.StatusForbidden
	case ErrorConflict:
		return http.StatusConflict
	case ErrorInvalidTransition:
		return http.StatusConflict
	case ErrorValidation:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Error carries a kind plus a message and satisfies the error interface, so
// domain packages can expose sentinel values that transport code maps by kind.
type Error struct {
	Kind    ErrorKind
	Message string
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf extracts the kind from an error produced by the core, unwrapping as
// needed. The second return is false for errors the core did not produce.
func KindOf(err error) (ErrorKind, bool) {
	var coreErr *Error
	if errors.As(err, &coreErr) {
		return coreErr.Kind, true
	}
	return "", false
}
