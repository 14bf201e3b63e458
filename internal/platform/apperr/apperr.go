// Package apperr defines the error taxonomy shared by every feature.
// Usecases and middleware return apperr values; the HTTP layer translates
// them to status codes in one place (platform/httpx).
package apperr

import "errors"

// Kind classifies a failure for the HTTP translation layer.
type Kind int

const (
	Validation Kind = iota
	Unauthorized
	Forbidden
	NotFound
	Conflict
)

// Error carries a taxonomy kind and a client-safe message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// E builds a taxonomy error.
func E(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// KindOf extracts the taxonomy kind from err, unwrapping as needed.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}
