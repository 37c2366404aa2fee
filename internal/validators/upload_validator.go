package validators

import (
	"fmt"
	"strings"

	apperrors "house-info-api/internal/errors"
	"house-info-api/internal/models"
)

type uploadValidator struct {
	maxBytes int64
}

// NewUploadValidator accepts non-empty image uploads up to maxBytes. A
// non-positive maxBytes disables the size check.
func NewUploadValidator(maxBytes int64) UploadValidator {
	return &uploadValidator{maxBytes: maxBytes}
}

func (v *uploadValidator) ValidateUpload(upload *models.Upload) error {
	if upload == nil {
		return fmt.Errorf("%w: no file provided", apperrors.ErrInvalidUpload)
	}
	if !strings.HasPrefix(strings.ToLower(upload.ContentType), "image/") {
		return fmt.Errorf("%w: content type %q", apperrors.ErrNotImage, upload.ContentType)
	}
	if len(upload.Data) == 0 {
		return fmt.Errorf("%w: %s is empty", apperrors.ErrInvalidUpload, upload.Filename)
	}
	if v.maxBytes > 0 && int64(len(upload.Data)) > v.maxBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", apperrors.ErrUploadTooLarge, len(upload.Data), v.maxBytes)
	}
	return nil
}
