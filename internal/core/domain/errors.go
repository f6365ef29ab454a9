package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// the two cases must stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDisabled is returned when the live user record is Disabled,
	// at login or at token verification time.
	ErrAccountDisabled = errors.New("account disabled")
	// ErrInvalidToken covers malformed, expired, revoked, and bad-signature
	// credentials, and tokens whose user no longer exists.
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrForbidden    = errors.New("access forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	// ErrUpstream is a store or network failure; details are logged
	// internally, never surfaced to the caller.
	ErrUpstream = errors.New("upstream unavailable")
	// ErrValidation is the match target for ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries the offending field names so clients can render
// inline messages. errors.Is(err, ErrValidation) matches it.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError for the given fields.
func NewValidationError(fields ...string) error {
	return &ValidationError{Fields: fields}
}
