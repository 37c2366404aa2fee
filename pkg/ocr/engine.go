package ocr

import (
	"fmt"

	"house-info-api/pkg/config"
	"house-info-api/pkg/ocr/tesseract"
)

// NewRecognizer builds the recognizer named by cfg.OCR.Provider.
func NewRecognizer(cfg *config.Config) (Recognizer, error) {
	switch cfg.OCR.Provider {
	case config.OCRProviderVision, "":
		if cfg.OCR.APIKey == "" {
			return nil, fmt.Errorf("vision OCR requires an API key")
		}
		return NewVisionClient(cfg.OCR.APIKey, cfg.OCR.BaseURL, cfg.OCR.Timeout), nil
	case config.OCRProviderTesseract:
		engine, err := tesseract.NewEngine(cfg.OCR.Language)
		if err != nil {
			return nil, err
		}
		return engine, nil
	default:
		return nil, fmt.Errorf("unknown OCR provider: %s", cfg.OCR.Provider)
	}
}
