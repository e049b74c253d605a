package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

// Error couples an error kind with a message safe to show to the caller.
// errors.Is against the sentinel kinds keeps working through Unwrap.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// E builds a caller-facing error of the given kind.
func E(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// UserMessage extracts the caller-safe message from err, or "" when err does
// not carry one (unexpected storage failures stay opaque).
func UserMessage(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}
