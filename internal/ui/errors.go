package ui

import (
	"errors"
	"strings"
)

// AbortError is a user-facing terminal error. The root command renders it as an
// error banner instead of a raw message.
type AbortError struct {
	Message    string
	TryMessage string
}

func NewAbortError(message string, tryMessage ...string) *AbortError {
	return &AbortError{
		Message:    message,
		TryMessage: strings.Join(tryMessage, "\n"),
	}
}

func (e *AbortError) Error() string {
	return e.Message
}

func IsAbort(err error) bool {
	var abort *AbortError
	return errors.As(err, &abort)
}

// NotFoundError is returned when a resource requested by an explicit identifier does not exist
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
