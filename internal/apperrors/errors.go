// Package apperrors holds the error types shared by the domain packages.
// The HTTP layer maps each type to a status code.
package apperrors

import "errors"

// ValidationError is returned when client input breaks a field rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError is returned when a referenced entity does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found." }

// ConflictError is returned when a request clashes with stored state.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Validation creates a *ValidationError.
func Validation(msg string) error { return &ValidationError{Message: msg} }

// NotFound creates a *NotFoundError for the given entity name.
func NotFound(entity string) error { return &NotFoundError{Entity: entity} }

// Conflict creates a *ConflictError.
func Conflict(msg string) error { return &ConflictError{Message: msg} }

// IsValidation reports whether err wraps a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err wraps a *ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
