package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"house-info-api/internal/detection"
	"house-info-api/internal/handlers"
	"house-info-api/internal/middleware"
	"house-info-api/internal/repositories"
	"house-info-api/internal/services"
	"house-info-api/internal/transformers"
	"house-info-api/internal/validators"
	"house-info-api/pkg/cache"
	"house-info-api/pkg/config"
	"house-info-api/pkg/logger"
	"house-info-api/pkg/maps"
	"house-info-api/pkg/metrics"
	"house-info-api/pkg/ocr"

	"github.com/gin-gonic/gin"
)

const cacheJanitorInterval = 10 * time.Minute

// App represents the application structure
type App struct {
	Config       *config.Config
	Router       *gin.Engine
	HouseHandler *handlers.HouseHandler
	RateLimiter  *middleware.RateLimiter
	Server       *http.Server

	redisClient    cache.CacheClient
	geocodeCache   repositories.GeocodeCache
	background     context.Context
	stopBackground context.CancelFunc
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}
	app.background, app.stopBackground = context.WithCancel(context.Background())

	// Initialize infrastructure
	app.initializeMetrics()
	app.initializeCache()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the geocode cache, Redis when enabled and in-process otherwise
func (a *App) initializeCache() {
	if !a.Config.Redis.Enabled {
		logger.GlobalLogger.Println("Redis disabled, caching geocode results in memory")
		memory := cache.NewCache()
		go memory.Janitor(a.background, cacheJanitorInterval)
		a.geocodeCache = repositories.NewGeocodeCache(memory, repositories.BackendMemory)
		return
	}

	client, err := cache.NewRedisClient(context.Background(), a.Config)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
	a.redisClient = client
	a.geocodeCache = repositories.NewRedisGeocodeCache(client)
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(
		middleware.PerMinute(a.Config.RateLimit.RequestsPerMinute),
		a.Config.RateLimit.Burst,
	)
	go a.RateLimiter.Cleanup(a.background, middleware.DefaultCleanupInterval)
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	cfg := a.Config

	// transformers
	addrTrans := transformers.NewAddressTransformer()

	// validators
	uploadValidator := validators.NewUploadValidator(cfg.Upload.MaxBytes)

	// external clients
	mapsClient, err := maps.NewClient(maps.Options{
		APIKey:  cfg.Maps.APIKey,
		BaseURL: cfg.Maps.BaseURL,
		Timeout: cfg.Maps.Timeout,
	}, addrTrans)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize maps client: %v", err)
		os.Exit(1)
	}
	if !mapsClient.Configured() {
		logger.GlobalLogger.Warnf("GOOGLE_MAPS_API_KEY is not set, geocoding requests will fail")
	}

	var recognizer ocr.Recognizer
	ocrProvider := ""
	if cfg.Detection.Mode == config.DetectionModeOCR {
		recognizer, err = ocr.NewRecognizer(cfg)
		if err != nil {
			logger.GlobalLogger.Errorf("Failed to initialize OCR: %v", err)
			os.Exit(1)
		}
		ocrProvider = recognizer.Name()
	}

	detector, err := detection.NewDetector(cfg, recognizer, nil)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize address detection: %v", err)
		os.Exit(1)
	}
	logger.GlobalLogger.Printf("Address detection mode: %s (detector=%s)", cfg.Detection.Mode, detector.Name())

	// services
	geocoder := services.NewCachedGeocoder(mapsClient, a.geocodeCache, addrTrans, cfg.Cache.GeocodeTTL)
	valuationService := services.NewValuationService(nil)
	houseService := services.NewHouseService(
		uploadValidator,
		detector,
		geocoder,
		valuationService,
		cfg.Detection.Mode == config.DetectionModeMock,
	)
	healthService := services.NewHealthService(mapsClient.Configured(), ocrProvider, a.geocodeCache, cfg.Detection.Mode)

	// handlers
	a.HouseHandler = handlers.NewHouseHandler(houseService, healthService, cfg.Upload.MaxBytes)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	if a.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.New()
	a.Router.MaxMultipartMemory = a.Config.Upload.MaxBytes
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	a.stopBackground()
	cache.CloseRedis(a.redisClient)
}
