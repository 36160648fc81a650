// ABOUTME: Custom error types for the discussion lookup core
// ABOUTME: Provides structured errors for remote search failures and invalid input

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents invalid caller input
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a non-success response from a search API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// CircuitOpenError is returned when calls to a host are short-circuited
type CircuitOpenError struct {
	Host string
	Err  error
}

// Error implements the error interface
func (e *CircuitOpenError) Error() string {
	return fmt.Sprintf("%s temporarily unavailable: %v", e.Host, e.Err)
}

// Unwrap returns the breaker error
func (e *CircuitOpenError) Unwrap() error {
	return e.Err
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsCircuitOpen checks if an error is a CircuitOpenError
func IsCircuitOpen(err error) bool {
	var openErr *CircuitOpenError
	return errors.As(err, &openErr)
}

// Reason returns the short, user-facing description of err.
// API errors report their message rather than the full diagnostic string.
func Reason(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *ExternalAPIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return err.Error()
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
