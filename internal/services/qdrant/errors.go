// File: internal/services/qdrant/errors.go
package qdrant

import (
	"context"
	"errors"
	"fmt"
)

// QdrantError represents a Qdrant-specific error.
type QdrantError struct {
	Type    string
	Message string
	Err     error
}

func (e *QdrantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("qdrant %s error: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("qdrant %s error: %s", e.Type, e.Message)
}

func (e *QdrantError) Unwrap() error {
	return e.Err
}

func NewConfigError(message string) *QdrantError {
	return &QdrantError{Type: "config", Message: message}
}

func NewConnectionError(message string, err error) *QdrantError {
	return &QdrantError{Type: "connection", Message: message, Err: err}
}

func NewOperationError(message string, err error) *QdrantError {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError(message, err)
	}
	return &QdrantError{Type: "operation", Message: message, Err: err}
}

func NewTimeoutError(message string, err error) *QdrantError {
	return &QdrantError{Type: "timeout", Message: message, Err: err}
}

// IsTimeout reports whether err represents an exceeded operation bound.
func IsTimeout(err error) bool {
	var qErr *QdrantError
	if errors.As(err, &qErr) {
		return qErr.Type == "timeout"
	}
	return false
}
