package service

import "strings"

// ValidationError carries the human-readable message list returned to the
// caller with a 422. It is never retried.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, " ")
}

func newValidationError(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}
