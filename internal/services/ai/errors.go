// File: internal/services/ai/errors.go
package ai

import (
	"context"
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeProvider   ErrorType = "PROVIDER"
	ErrTypeTimeout    ErrorType = "TIMEOUT"
	ErrTypeValidation ErrorType = "VALIDATION"
)

type AIError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *AIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("AI %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("AI %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *AIError) Unwrap() error { return e.Cause }

func NewConfigError(msg string) *AIError {
	return &AIError{Type: ErrTypeConfig, Message: msg, Operation: "config"}
}

func NewProviderError(operation, msg string, cause error) *AIError {
	// Timeouts surface as their own kind so callers can tell an overloaded
	// provider apart from a broken one.
	if errors.Is(cause, context.DeadlineExceeded) {
		return &AIError{Type: ErrTypeTimeout, Operation: operation, Message: msg, Cause: cause}
	}
	return &AIError{Type: ErrTypeProvider, Operation: operation, Message: msg, Cause: cause}
}

// IsTimeout reports whether err is a provider call that ran out its bound.
func IsTimeout(err error) bool {
	var aiErr *AIError
	if errors.As(err, &aiErr) {
		return aiErr.Type == ErrTypeTimeout
	}
	return false
}
