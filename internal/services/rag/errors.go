// File: internal/services/rag/errors.go
package rag

import "fmt"

type ErrorType string

const (
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeEmbedding  ErrorType = "EMBEDDING"
	ErrTypeSearch     ErrorType = "SEARCH"
	ErrTypeCompletion ErrorType = "COMPLETION"
	ErrTypeModeration ErrorType = "MODERATION"
)

type RAGError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *RAGError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("RAG %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("RAG %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *RAGError) Unwrap() error { return e.Cause }

func NewValidationError(operation, msg string) *RAGError {
	return &RAGError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

func newStepError(errType ErrorType, operation, msg string, cause error) *RAGError {
	return &RAGError{Type: errType, Operation: operation, Message: msg, Cause: cause}
}
