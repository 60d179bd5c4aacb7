package models

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamUnreachable means an upstream service did not answer
	// (connection failure or timeout)
	ErrUpstreamUnreachable = errors.New("upstream service unreachable")

	// ErrInvalidUpstreamResponse means the auth service answered with a
	// body that does not carry an access token
	ErrInvalidUpstreamResponse = errors.New("invalid response from auth service")
)

// ValidationError reports bad input shape, caught before any network call
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// UpstreamError reports a structured 4xx/5xx answer from an upstream
// service. Message is the upstream-supplied detail and is considered safe
// to relay to the caller.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}
