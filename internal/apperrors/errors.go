package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidCredentials indicates that a login attempt did not match the configured owner.
var ErrInvalidCredentials = errors.New("invalid credentials")

// NewValidationError wraps ErrValidation with a message that is safe to show to the user.
func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// Message returns the user-facing part of a validation error, i.e. the text
// after the last "validation error: " marker. Other errors are returned as is.
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// AppError carries an HTTP-ish status code alongside a wrapped driver error.
// Repositories use it for storage faults so handlers can log the cause
// without leaking it to the client.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}
