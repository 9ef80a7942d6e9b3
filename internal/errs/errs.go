// Package errs defines the error taxonomy shared by services and handlers.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses never leak account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering a duplicate email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNotFound is returned for absent records and for records owned by
	// another user; the two cases are indistinguishable to the caller.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated covers missing, invalid and unknown-user
	// credentials. The distinction is logged, never surfaced.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationError reports malformed input rejected before any side effect.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation builds a ValidationError for a field.
func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UpstreamError wraps a failure of an external provider. The suggestion
// pipeline absorbs these internally; they never cross the API boundary.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Upstream wraps err as a provider failure.
func Upstream(provider string, err error) error {
	return &UpstreamError{Provider: provider, Err: err}
}

// IsUpstream reports whether err is an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// ErrRateLimited is the explicit rate-limit signal from a provider. The
// pipeline treats it like any other upstream failure and moves on.
var ErrRateLimited = errors.New("rate limited")
