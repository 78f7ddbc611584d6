package models

import "fmt"

// ValidationError indicates an incident record that violates the data model
// invariants (negative reassignment count, resolution before opening, ...)
type ValidationError struct {
	message string
}

// NewValidationError creates a new validation error
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		message: fmt.Sprintf(format, args...),
	}
}

// Error returns the error message
func (e *ValidationError) Error() string {
	return e.message
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// EmptyInputError indicates that there is nothing to rank or aggregate.
// Callers surface this as "insufficient data" rather than crashing.
type EmptyInputError struct {
	message string
}

// NewEmptyInputError creates a new empty input error
func NewEmptyInputError(format string, args ...interface{}) *EmptyInputError {
	return &EmptyInputError{
		message: fmt.Sprintf(format, args...),
	}
}

// Error returns the error message
func (e *EmptyInputError) Error() string {
	return e.message
}

// IsEmptyInputError checks if an error is an empty input error
func IsEmptyInputError(err error) bool {
	_, ok := err.(*EmptyInputError)
	return ok
}

// InsufficientDataError indicates that the incident set cannot support the
// requested statistical analysis, e.g. a contingency table with a
// zero-expected-count cell or fewer than two usable categories or buckets.
type InsufficientDataError struct {
	message string
}

// NewInsufficientDataError creates a new insufficient data error
func NewInsufficientDataError(format string, args ...interface{}) *InsufficientDataError {
	return &InsufficientDataError{
		message: fmt.Sprintf(format, args...),
	}
}

// Error returns the error message
func (e *InsufficientDataError) Error() string {
	return e.message
}

// IsInsufficientDataError checks if an error is an insufficient data error
func IsInsufficientDataError(err error) bool {
	_, ok := err.(*InsufficientDataError)
	return ok
}
