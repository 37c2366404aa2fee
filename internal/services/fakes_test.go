package services

import (
	"context"
	"time"

	"house-info-api/internal/models"
	"house-info-api/internal/repositories"
)

type fakeGeocoder struct {
	result *models.AddressResult
	err    error
	calls  []string
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) (*models.AddressResult, error) {
	f.calls = append(f.calls, address)
	if f.result == nil {
		return nil, f.err
	}
	r := *f.result
	r.Address = address
	return &r, f.err
}

type fakeGeocodeCache struct {
	entries map[string]*models.AddressResult
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
	pingErr error
	backend string
}

func newFakeGeocodeCache(backend string) *fakeGeocodeCache {
	return &fakeGeocodeCache{
		entries: map[string]*models.AddressResult{},
		ttls:    map[string]time.Duration{},
		backend: backend,
	}
}

func (f *fakeGeocodeCache) GetAddress(ctx context.Context, key string) (*models.AddressResult, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.entries[key], nil
}

func (f *fakeGeocodeCache) SetAddress(ctx context.Context, key string, address *models.AddressResult, expiration time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = address
	f.ttls[key] = expiration
	return nil
}

func (f *fakeGeocodeCache) Ping(ctx context.Context) error {
	return f.pingErr
}

func (f *fakeGeocodeCache) Backend() string {
	return f.backend
}

var _ repositories.GeocodeCache = (*fakeGeocodeCache)(nil)

type fakeDetector struct {
	detection *models.Detection
	err       error
}

func (f *fakeDetector) Name() string { return "fake" }

func (f *fakeDetector) Detect(ctx context.Context, image []byte) (*models.Detection, error) {
	return f.detection, f.err
}
