package services

import "fmt"

// ValidationError is a client caused failure reported with a short code.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}
