// File: internal/services/directory/errors.go
package directory

import "fmt"

// Error types for directory refresh operations
const (
	ErrTypeFetch      = "FETCH_ERROR"
	ErrTypeValidation = "VALIDATION_ERROR"
	ErrTypeStorage    = "STORAGE_ERROR"
)

// DirectoryError carries the failing operation so refresh logs can tell a
// download failure from a database failure.
type DirectoryError struct {
	Type      string
	Operation string
	Message   string
	Cause     error
}

func (e *DirectoryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (caused by: %v)", e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Operation, e.Message)
}

func (e *DirectoryError) Unwrap() error {
	return e.Cause
}

// NewFetchError wraps a feed download failure.
func NewFetchError(url string, cause error) *DirectoryError {
	return &DirectoryError{
		Type:      ErrTypeFetch,
		Operation: "fetch_feed",
		Message:   fmt.Sprintf("failed to fetch feed %s", url),
		Cause:     cause,
	}
}

// NewStorageError wraps a database failure during a refresh.
func NewStorageError(operation string, cause error) *DirectoryError {
	return &DirectoryError{
		Type:      ErrTypeStorage,
		Operation: operation,
		Message:   "pharmacy storage operation failed",
		Cause:     cause,
	}
}
