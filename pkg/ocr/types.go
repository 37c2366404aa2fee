// Package ocr turns photos into recognized text.
package ocr

import (
	"context"
)

// Recognizer extracts text from encoded image bytes. Blank text with a nil
// error means nothing was recognized.
type Recognizer interface {
	Name() string
	Recognize(ctx context.Context, image []byte) (string, error)
}
