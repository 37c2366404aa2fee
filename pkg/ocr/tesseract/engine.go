package tesseract

import (
	"errors"
)

// ErrUnavailable is returned by builds without the tesseract tag.
var ErrUnavailable = errors.New("tesseract OCR is not available in this build (rebuild with -tags tesseract)")

const defaultLanguage = "eng"

func (e *Engine) Name() string {
	return "tesseract"
}
