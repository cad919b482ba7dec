// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyUserName is returned when a user name is missing.
	ErrEmptyUserName = fmt.Errorf("%w: user name cannot be empty", ErrValidation)

	// ErrEmptyEmail is returned when an email address is missing.
	ErrEmptyEmail = fmt.Errorf("%w: email cannot be empty", ErrValidation)

	// ErrEmptyPassword is returned when a password is missing.
	ErrEmptyPassword = fmt.Errorf("%w: password cannot be empty", ErrValidation)

	// ErrNoShopNames is returned when a registration carries no shop names.
	ErrNoShopNames = fmt.Errorf("%w: at least one shop name is required", ErrValidation)

	// ErrEmptyShopName is returned when a shop name entry is blank.
	ErrEmptyShopName = fmt.Errorf("%w: shop names cannot be blank", ErrValidation)

	// ErrEmptyReceiverEmail is returned when a notification query omits the receiver.
	ErrEmptyReceiverEmail = fmt.Errorf("%w: receiver email is required", ErrValidation)
)

// ValidationError carries the field that failed validation alongside a
// human-readable message. It wraps ErrValidation so callers can use
// errors.Is to detect the whole class.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrValidation
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
