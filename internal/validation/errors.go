// Package validation gates incoming search queries and sanitizes candidate
// filter sets down to the closed vocabularies.
package validation

import "fmt"

// Error represents a caller-supplied value that failed validation
type Error struct {
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s - %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a validation error for a field
func NewError(field, message string) *Error {
	return &Error{Field: field, Message: message}
}
