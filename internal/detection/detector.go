// Package detection finds a postal address in an uploaded house photo.
package detection

import (
	"context"
	"fmt"
	"math/rand/v2"

	"house-info-api/internal/models"
	"house-info-api/internal/transformers"
	"house-info-api/pkg/config"
	"house-info-api/pkg/ocr"
)

// Detector locates an address in image bytes. It returns errors.ErrNoText when
// the photo holds no readable text and errors.ErrNoAddress when the text holds
// nothing address-shaped.
type Detector interface {
	Name() string
	Detect(ctx context.Context, image []byte) (*models.Detection, error)
}

// NewDetector builds the detector selected by cfg.Detection.Mode. The
// recognizer is only required in ocr mode.
func NewDetector(cfg *config.Config, recognizer ocr.Recognizer, rng *rand.Rand) (Detector, error) {
	switch cfg.Detection.Mode {
	case config.DetectionModeMock, "":
		return NewMockDetector(rng), nil
	case config.DetectionModeOCR:
		if recognizer == nil {
			return nil, fmt.Errorf("ocr detection mode requires an OCR recognizer")
		}
		return NewOCRDetector(recognizer, transformers.NewAddressExtractor()), nil
	default:
		return nil, fmt.Errorf("unknown detection mode: %s", cfg.Detection.Mode)
	}
}
