// Package service implements the application core: registration, login
// and movie catalog operations with validation and ownership checks.
// Handlers translate the sentinel errors defined here into HTTP status
// codes and error_code values.
package service

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports missing or malformed input. Handlers map it to
// HTTP 400 and surface Code as the envelope error_code.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewMissingFieldsError builds a ValidationError naming the missing
// fields in submission order.
func NewMissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{
		Code:    "MISSING_FIELDS",
		Message: fmt.Sprintf("Missing required fields: %s", strings.Join(fields, ", ")),
	}
}

// AsValidation reports whether err is a ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ErrPasswordMismatch is returned when password and confirmation differ.
var ErrPasswordMismatch = errors.New("passwords do not match")

// ErrUserExists is returned when the email is already registered.
var ErrUserExists = errors.New("user with this email already exists")

// ErrInvalidCredentials is returned for an unknown email or a wrong
// password; callers cannot tell which.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrAccessDenied is returned when a requester tries to mutate a movie
// they do not own. Handlers map it to HTTP 403.
var ErrAccessDenied = errors.New("access denied")

// ErrNotFound is returned when the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrNoUpdateFields is returned when an update carries no usable fields.
var ErrNoUpdateFields = errors.New("no valid fields to update")

// ErrPersistence hides store-level failures from callers; the underlying
// error has already been logged at the adapter boundary.
var ErrPersistence = errors.New("persistence failure")
