package errors

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError == nil {
		return e.UserMessage
	}
	return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Sentinel errors shared across layers
var (
	ErrNoText            = errors.New("no text recognized in image")
	ErrNoAddress         = errors.New("no address found in recognized text")
	ErrInvalidUpload     = errors.New("invalid upload")
	ErrNotImage          = errors.New("file must be an image")
	ErrUploadTooLarge    = errors.New("upload exceeds size limit")
	ErrMapsNotConfigured = errors.New("maps API key is not configured")
)

// Common error codes
const (
	ErrCodeInvalidFile        = "INVALID_FILE"
	ErrCodeFileTooLarge       = "FILE_TOO_LARGE"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeAnalysisFailed     = "ANALYSIS_FAILED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// Is and As re-export the standard helpers so callers need one errors import.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }
