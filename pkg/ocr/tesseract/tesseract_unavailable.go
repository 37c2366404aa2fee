//go:build !tesseract

package tesseract

import (
	"context"
)

// Engine is a placeholder that always reports ErrUnavailable.
type Engine struct{}

func NewEngine(language string) (*Engine, error) {
	return nil, ErrUnavailable
}

func (e *Engine) Recognize(ctx context.Context, image []byte) (string, error) {
	return "", ErrUnavailable
}
