package services

import (
	"context"
	"time"

	"house-info-api/internal/models"
	"house-info-api/internal/repositories"
	"house-info-api/pkg/logger"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"

	apiConnected     = "connected"
	apiNotConfigured = "not_configured"
	apiDisabled      = "disabled"
	apiUnavailable   = "unavailable"

	healthPingTimeout = 2 * time.Second
)

// HealthService reports which external dependencies the API is wired to.
type HealthService struct {
	mapsConfigured bool
	ocrProvider    string
	cache          repositories.GeocodeCache
	detectionMode  string
}

// NewHealthService takes an empty ocrProvider when OCR is not in use.
func NewHealthService(mapsConfigured bool, ocrProvider string, cache repositories.GeocodeCache, detectionMode string) *HealthService {
	return &HealthService{
		mapsConfigured: mapsConfigured,
		ocrProvider:    ocrProvider,
		cache:          cache,
		detectionMode:  detectionMode,
	}
}

// Check reports degraded only when the Redis cache fails to answer.
func (s *HealthService) Check(ctx context.Context) *models.HealthResponse {
	resp := &models.HealthResponse{
		Status:        StatusHealthy,
		APIs:          map[string]string{"maps": apiNotConfigured, "ocr": apiDisabled, "cache": s.cache.Backend()},
		DetectionMode: s.detectionMode,
	}
	if s.mapsConfigured {
		resp.APIs["maps"] = apiConnected
	}
	if s.ocrProvider != "" {
		resp.APIs["ocr"] = s.ocrProvider
	}

	if s.cache.Backend() == repositories.BackendRedis {
		pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
		defer cancel()
		if err := s.cache.Ping(pingCtx); err != nil {
			logger.GlobalLogger.Warnf("Health check: redis ping failed: %v", err)
			resp.APIs["cache"] = apiUnavailable
			resp.Status = StatusDegraded
		}
	}
	return resp
}
