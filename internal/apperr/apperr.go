package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a request failure. Every error a service returns is one of
// these, so handlers switch on kind instead of parsing message text.
type Kind int

const (
	Internal Kind = iota
	Validation
	DuplicateEmail
	InvalidCredentials
	Unauthorized
	Forbidden
	NotFound
)

// Error carries a failure kind together with the user-facing message placed
// in the response body. Internal detail never travels through here.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// New builds a typed application error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the kind from err, defaulting to Internal for anything
// that is not an *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Internal
}

// HTTPStatus maps a kind to its fixed response status.
func (k Kind) HTTPStatus() int {
	switch k {
	case Validation, DuplicateEmail:
		return http.StatusBadRequest
	case InvalidCredentials, Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
