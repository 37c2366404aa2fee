package services

import (
	"context"

	"house-info-api/internal/models"
)

// Geocoder resolves a free-form address. A nil result with a nil error means
// the address could not be located.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*models.AddressResult, error)
}
