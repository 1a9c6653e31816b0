package services

import "fmt"

// ValidationError is a rejected client input. Message is safe to return as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

const (
	ReasonEncrypted  = "encrypted"
	ReasonEmpty      = "empty"
	ReasonTooShort   = "too_short"
	ReasonUnreadable = "unreadable"
)

// ExtractionError means no usable text could be taken from the resume PDF.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pdf extraction failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("pdf extraction failed (%s)", e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// EmbeddingError means the model could not produce a usable vector.
type EmbeddingError struct {
	Err error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding failed: %v", e.Err)
}

func (e *EmbeddingError) Unwrap() error {
	return e.Err
}
