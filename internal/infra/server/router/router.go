// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sales-performance/backend/internal/integration/entrypoint/controller"
	"github.com/sales-performance/backend/internal/integration/entrypoint/middleware"
)

// MetricsEndpoint exposes collected metrics and observes every request.
type MetricsEndpoint struct {
	Path     string
	Handler  http.Handler
	Observer middleware.RequestObserver
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	saleController        *controller.SaleController
	performanceController *controller.PerformanceController
	exportController      *controller.ExportController
	metrics               *MetricsEndpoint
}

// NewRouter creates a new router instance with all dependencies.
// A nil metrics endpoint disables request metrics and the scrape route.
func NewRouter(
	healthController *controller.HealthController,
	saleController *controller.SaleController,
	performanceController *controller.PerformanceController,
	exportController *controller.ExportController,
	metrics *MetricsEndpoint,
) *Router {
	return &Router{
		healthController:      healthController,
		saleController:        saleController,
		performanceController: performanceController,
		exportController:      exportController,
		metrics:               metrics,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	if r.metrics != nil && r.metrics.Observer != nil {
		r.engine.Use(middleware.RequestMetrics(r.metrics.Observer))
	}

	// Setup routes
	r.setupHealthRoutes()
	r.setupMetricsRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupMetricsRoutes configures the Prometheus scrape endpoint.
func (r *Router) setupMetricsRoutes() {
	if r.metrics == nil || r.metrics.Handler == nil {
		return
	}
	path := r.metrics.Path
	if path == "" {
		path = "/metrics"
	}
	r.engine.GET(path, gin.WrapH(r.metrics.Handler))
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Sale routes
		if r.saleController != nil {
			sales := v1.Group("/sales")
			{
				sales.GET("", r.saleController.List)
				sales.POST("", r.saleController.Create)
				sales.PUT("/:id", r.saleController.Update)
				sales.DELETE("/:id", r.saleController.Delete)
				sales.POST("/:id/cancel", r.saleController.ToggleCancel)
				sales.PATCH("/:id/notes", r.saleController.UpdateNotes)
			}
		}

		// Performance and commission routes
		if r.performanceController != nil {
			v1.GET("/performance", r.performanceController.Get)

			commission := v1.Group("/commission")
			{
				commission.GET("/tiers", r.performanceController.Tiers)
				commission.POST("/quote", r.performanceController.Quote)
			}
		}

		// Report download
		if r.exportController != nil {
			v1.GET("/export", r.exportController.Download)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
