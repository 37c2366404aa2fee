package detection

import (
	"context"
	"fmt"
	"strings"

	apperrors "house-info-api/internal/errors"
	"house-info-api/internal/models"
	"house-info-api/internal/transformers"
	"house-info-api/pkg/logger"
	"house-info-api/pkg/ocr"
)

// OCRDetector reads the photo with a Recognizer and takes the first address
// candidate found in the recognized lines.
type OCRDetector struct {
	recognizer ocr.Recognizer
	extractor  transformers.AddressExtractor
}

func NewOCRDetector(recognizer ocr.Recognizer, extractor transformers.AddressExtractor) *OCRDetector {
	return &OCRDetector{recognizer: recognizer, extractor: extractor}
}

func (d *OCRDetector) Name() string {
	return "ocr:" + d.recognizer.Name()
}

func (d *OCRDetector) Detect(ctx context.Context, image []byte) (*models.Detection, error) {
	text, err := d.recognizer.Recognize(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("text recognition failed: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ErrNoText
	}

	lines := transformers.SplitLines(text)
	candidates := d.extractor.Candidates(lines)
	logger.GlobalLogger.Debugf("OCR produced %d lines and %d address candidates", len(lines), len(candidates))
	if len(candidates) == 0 {
		return nil, apperrors.ErrNoAddress
	}

	return &models.Detection{
		Address:    candidates[0],
		Source:     d.Name(),
		Candidates: candidates,
		RawText:    text,
	}, nil
}
