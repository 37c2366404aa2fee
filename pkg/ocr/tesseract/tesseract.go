//go:build tesseract

package tesseract

import (
	"context"
	"fmt"
	"time"

	"house-info-api/pkg/logger"
	"house-info-api/pkg/metrics"

	"github.com/otiai10/gosseract/v2"
)

// Engine recognizes text with a local Tesseract installation via gosseract.
type Engine struct {
	language string
}

func NewEngine(language string) (*Engine, error) {
	if language == "" {
		language = defaultLanguage
	}
	return &Engine{language: language}, nil
}

// Recognize preprocesses the image and runs Tesseract over it.
func (e *Engine) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	start := time.Now()
	defer func() {
		metrics.ExternalRequestDuration.WithLabelValues("ocr", e.Name()).Observe(time.Since(start).Seconds())
	}()

	processed, err := Enhance(image)
	if err != nil {
		metrics.ExternalErrorsTotal.WithLabelValues("ocr", e.Name()).Inc()
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(processed); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		metrics.ExternalErrorsTotal.WithLabelValues("ocr", e.Name()).Inc()
		logger.GlobalLogger.Errorf("Tesseract recognition failed: error=%v", err)
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}
