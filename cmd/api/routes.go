package main

import (
	"net/http"
	_ "net/http/pprof"

	_ "house-info-api/docs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupStaticRoutes()
	a.setupAPIRoutes()
}

// setupStaticRoutes configures documentation, metrics and profiling
func (a *App) setupStaticRoutes() {
	a.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Expose pprof profiling endpoints (disable in production)
	if !a.Config.IsProduction() {
		a.Router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	a.Router.GET("/", a.HouseHandler.Root)
	a.Router.GET("/health", a.HouseHandler.Health)
	a.Router.POST("/analyze-house", a.HouseHandler.AnalyzeHouse)
}
