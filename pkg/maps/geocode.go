package maps

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "house-info-api/internal/errors"
	"house-info-api/internal/models"
	"house-info-api/pkg/logger"
	"house-info-api/pkg/metrics"

	"googlemaps.github.io/maps"
)

// Geocode resolves address to a location. A nil result with a nil error
// means the service found nothing.
func (c *Client) Geocode(ctx context.Context, address string) (*models.AddressResult, error) {
	if !c.Configured() {
		return nil, apperrors.ErrMapsNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	results, err := c.maps.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	metrics.ExternalRequestDuration.WithLabelValues("geocode", c.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		if isZeroResults(err) {
			logger.GlobalLogger.Printf("Geocoding returned no results: address=%q", address)
			return nil, nil
		}
		err = apperrors.RedactSecrets(err)
		metrics.ExternalErrorsTotal.WithLabelValues("geocode", c.Name()).Inc()
		logger.GlobalLogger.Errorf("Geocoding failed: address=%q, error=%v", address, err)
		return nil, fmt.Errorf("geocode %q: %w", address, err)
	}

	if len(results) == 0 {
		logger.GlobalLogger.Printf("Geocoding returned no results: address=%q", address)
		return nil, nil
	}

	logger.GlobalLogger.Debugf("Geocoded address=%q place_id=%s", address, results[0].PlaceID)
	return c.addrTrans.TransformGeocodeResult(address, results[0]), nil
}

func isZeroResults(err error) bool {
	return strings.Contains(err.Error(), "ZERO_RESULTS")
}
