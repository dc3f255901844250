package core

import (
	"errors"
)

// ErrRateLimited is returned when a client exhausted its request window
var ErrRateLimited = errors.New("rate limit exceeded")

// ValidationError reports malformed, missing or oversized input. Message is
// safe to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err wraps a ValidationError
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
