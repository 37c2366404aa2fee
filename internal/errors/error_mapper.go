package errors

import (
	"net/http"
	"strings"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return appErr
	}

	err = RedactSecrets(err)
	technicalMessage := err.Error()

	switch {
	case Is(err, ErrNotImage):
		return NewAppError(technicalMessage, MsgNotImage, ErrCodeInvalidFile, http.StatusBadRequest, err)
	case Is(err, ErrUploadTooLarge), strings.Contains(technicalMessage, "request body too large"):
		return NewAppError(technicalMessage, MsgFileTooLarge, ErrCodeFileTooLarge, http.StatusRequestEntityTooLarge, err)
	case Is(err, ErrInvalidUpload):
		return NewAppError(technicalMessage, MsgInvalidUpload, ErrCodeInvalidFile, http.StatusBadRequest, err)
	case Is(err, ErrMapsNotConfigured):
		return NewAppError(technicalMessage, MsgServiceUnavailable, ErrCodeServiceUnavailable, http.StatusServiceUnavailable, err)
	case strings.Contains(technicalMessage, "OVER_QUERY_LIMIT"), strings.Contains(technicalMessage, "REQUEST_DENIED"):
		return NewAppError(technicalMessage, MsgServiceUnavailable, ErrCodeServiceUnavailable, http.StatusServiceUnavailable, err)
	default:
		return NewAppError(technicalMessage, "Analysis failed: "+technicalMessage, ErrCodeAnalysisFailed, http.StatusInternalServerError, err)
	}
}
