package repositories

import (
	"context"
	"time"

	"house-info-api/internal/models"
)

// GeocodeCache stores geocoding results keyed by normalized address.
type GeocodeCache interface {
	GetAddress(ctx context.Context, key string) (*models.AddressResult, error)
	SetAddress(ctx context.Context, key string, address *models.AddressResult, expiration time.Duration) error
	Ping(ctx context.Context) error
	Backend() string
}
