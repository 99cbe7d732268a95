package errors

import (
	stderrors "errors"
	"fmt"
)

// ValidationError represents a client-side validation failure.
// It never reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// APIError represents a non-2xx answer of the remote API.
// Message is either extracted from the error envelope or the generic
// "HTTP error <status>" fallback.
type APIError struct {
	Status  int
	Message string
}

// NewAPIError creates a new API error
func NewAPIError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("HTTP error %d", status)
	}
	return &APIError{
		Status:  status,
		Message: message,
	}
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// TransportError represents a request that never produced an HTTP response.
type TransportError struct {
	Err error
}

// NewTransportError creates a new transport error
func NewTransportError(err error) *TransportError {
	return &TransportError{Err: err}
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.Err == nil {
		return "network error"
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message returns the human-readable text of err, the way it is shown to the
// operator in notifications and inline error states.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.Message
	}

	var validationErr *ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.Message
	}

	return err.Error()
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return stderrors.As(err, &validationErr)
}
