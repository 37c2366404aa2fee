package services

import (
	"context"
	"time"

	"house-info-api/internal/models"
	"house-info-api/internal/repositories"
	"house-info-api/internal/transformers"
	"house-info-api/pkg/cache"
	"house-info-api/pkg/logger"
	"house-info-api/pkg/metrics"
)

const DefaultGeocodeTTL = 24 * time.Hour

// CachedGeocoder serves repeat lookups of the same address from a
// GeocodeCache. Cache failures are logged and never fail the lookup.
type CachedGeocoder struct {
	next      Geocoder
	cache     repositories.GeocodeCache
	addrTrans transformers.AddressTransformer
	ttl       time.Duration
}

func NewCachedGeocoder(
	next Geocoder,
	cache repositories.GeocodeCache,
	addrTrans transformers.AddressTransformer,
	ttl time.Duration,
) *CachedGeocoder {
	if ttl <= 0 {
		ttl = DefaultGeocodeTTL
	}
	return &CachedGeocoder{
		next:      next,
		cache:     cache,
		addrTrans: addrTrans,
		ttl:       ttl,
	}
}

func (g *CachedGeocoder) Geocode(ctx context.Context, address string) (*models.AddressResult, error) {
	key := cache.GeocodeKey(g.addrTrans.CacheKeyComponent(address))

	cached, err := g.cache.GetAddress(ctx, key)
	if err != nil {
		logger.GlobalLogger.Warnf("Geocode cache read failed: key=%s, backend=%s, error=%v", key, g.cache.Backend(), err)
	}
	if cached != nil {
		metrics.CacheHitsTotal.Inc()
		hit := *cached
		hit.Address = address
		return &hit, nil
	}
	metrics.CacheMissesTotal.Inc()

	result, err := g.next.Geocode(ctx, address)
	if err != nil || result == nil {
		return result, err
	}

	if err := g.cache.SetAddress(ctx, key, result, g.ttl); err != nil {
		logger.GlobalLogger.Warnf("Geocode cache write failed: key=%s, backend=%s, error=%v", key, g.cache.Backend(), err)
	}
	return result, nil
}
