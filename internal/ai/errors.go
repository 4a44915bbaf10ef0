package ai

import (
	"fmt"

	"github.com/RobNel12/newbot-ai/internal/domain"
)

// APIError represents an error from the completion API
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

// NewAPIError creates a new API error
func NewAPIError(provider string, statusCode int, message string, err error) *APIError {
	return &APIError{
		Provider:   provider,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s API error (status %d): %s: %v", e.Provider, e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

// Unwrap implements error unwrapping
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches domain.ErrGeneratorUnavailable so callers can treat every API
// failure as an unavailable generator
func (e *APIError) Is(target error) bool {
	return target == domain.ErrGeneratorUnavailable
}
