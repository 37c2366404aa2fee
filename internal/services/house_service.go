package services

import (
	"context"
	"errors"
	"time"

	"house-info-api/internal/detection"
	apperrors "house-info-api/internal/errors"
	"house-info-api/internal/models"
	"house-info-api/internal/utils"
	"house-info-api/internal/validators"
	"house-info-api/pkg/logger"
	"house-info-api/pkg/metrics"
)

// Analysis outcomes as recorded in metrics.
const (
	OutcomeSuccess       = "success"
	OutcomeInvalidUpload = "invalid_upload"
	OutcomeNoText        = "no_text"
	OutcomeNoAddress     = "no_address"
	OutcomeNotGeocoded   = "not_geocoded"
	OutcomeError         = "error"
)

const demoModeSuffix = " (demo mode)"

// HouseService turns a house photo into an address and a property record.
type HouseService struct {
	validator validators.UploadValidator
	detector  detection.Detector
	geocoder  Geocoder
	valuation *ValuationService
	demoMode  bool
}

func NewHouseService(
	validator validators.UploadValidator,
	detector detection.Detector,
	geocoder Geocoder,
	valuation *ValuationService,
	demoMode bool,
) *HouseService {
	return &HouseService{
		validator: validator,
		detector:  detector,
		geocoder:  geocoder,
		valuation: valuation,
		demoMode:  demoMode,
	}
}

// AnalyzeHouse returns an unsuccessful response, not an error, when the photo
// is readable but yields no address or the address cannot be geocoded.
// Errors are left for the error middleware to map.
func (s *HouseService) AnalyzeHouse(ctx context.Context, upload *models.Upload) (*models.HouseInfoResponse, error) {
	start := time.Now()

	if err := s.validator.ValidateUpload(upload); err != nil {
		s.recordOutcome(OutcomeInvalidUpload)
		return nil, err
	}

	detected, err := s.detector.Detect(ctx, upload.Data)
	switch {
	case errors.Is(err, apperrors.ErrNoText):
		s.recordOutcome(OutcomeNoText)
		return failure(apperrors.MsgNoTextFound), nil
	case errors.Is(err, apperrors.ErrNoAddress):
		s.recordOutcome(OutcomeNoAddress)
		return failure(apperrors.MsgNoAddressFound), nil
	case err != nil:
		s.recordOutcome(OutcomeError)
		return nil, utils.WrapError(err, "address detection failed")
	}

	address, err := s.geocoder.Geocode(ctx, detected.Address)
	if err != nil {
		s.recordOutcome(OutcomeError)
		return nil, utils.WrapError(err, "geocoding %q failed", detected.Address)
	}
	if address == nil {
		s.recordOutcome(OutcomeNotGeocoded)
		logger.GlobalLogger.Printf("No geocoding result: address=%q, detector=%s", detected.Address, detected.Source)
		return failure(apperrors.MsgGeocodeFailed), nil
	}

	info := s.valuation.Estimate(*address)
	s.recordOutcome(OutcomeSuccess)
	logger.GlobalLogger.Debugf("Analyzed %s in %v: address=%q", upload.Filename, time.Since(start), address.FormattedAddress)

	message := apperrors.MsgAnalysisSucceeded
	if s.demoMode {
		message += demoModeSuffix
	}
	return &models.HouseInfoResponse{
		Success:      true,
		Message:      message,
		PropertyInfo: info,
	}, nil
}

func (s *HouseService) recordOutcome(outcome string) {
	metrics.AnalysisOutcomesTotal.WithLabelValues(s.detector.Name(), outcome).Inc()
}

func failure(message string) *models.HouseInfoResponse {
	return &models.HouseInfoResponse{Success: false, Message: message}
}
