// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/sales-performance/backend/config"
	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/application/usecase/export"
	"github.com/sales-performance/backend/internal/application/usecase/performance"
	"github.com/sales-performance/backend/internal/application/usecase/sale"
	"github.com/sales-performance/backend/internal/infra/metrics"
	"github.com/sales-performance/backend/internal/infra/server/router"
	"github.com/sales-performance/backend/internal/integration/adapters"
	"github.com/sales-performance/backend/internal/integration/entrypoint/controller"
	"github.com/sales-performance/backend/internal/integration/exporter"
	"github.com/sales-performance/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config  *config.Config
	DB      *gorm.DB
	Metrics *metrics.Recorder
	Router  *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// healthCheck reports whether the session store is reachable.
func NewInjector(cfg *config.Config, db *gorm.DB, healthCheck func() bool) *Injector {
	return NewInjectorWithClock(cfg, db, healthCheck, adapters.NewSystemClock())
}

// NewInjectorWithClock wires the application around the given clock.
func NewInjectorWithClock(cfg *config.Config, db *gorm.DB, healthCheck func() bool, clock adapter.Clock) *Injector {
	// Create repositories
	saleRepo := persistence.NewSaleRepository(db)

	// Create adapters/services
	recorder := metrics.NewRecorder()
	csvExporter := exporter.NewCSVExporter()

	// Create sale use cases
	listSalesUseCase := sale.NewListSalesUseCase(saleRepo, clock, recorder)
	recordSaleUseCase := sale.NewRecordSaleUseCase(saleRepo, clock, recorder)
	updateSaleUseCase := sale.NewUpdateSaleUseCase(saleRepo, clock, recorder)
	deleteSaleUseCase := sale.NewDeleteSaleUseCase(saleRepo, recorder)
	toggleCancellationUseCase := sale.NewToggleCancellationUseCase(saleRepo, clock, recorder)
	updateNotesUseCase := sale.NewUpdateNotesUseCase(saleRepo, clock, recorder)

	// Create performance use cases
	getPerformanceUseCase := performance.NewGetPerformanceUseCase(saleRepo, clock, recorder)
	listTiersUseCase := performance.NewListTiersUseCase()
	quoteCommissionUseCase := performance.NewQuoteCommissionUseCase(saleRepo, clock, recorder)

	// Create export use cases
	exportSalesUseCase := export.NewExportSalesUseCase(saleRepo, csvExporter, clock, cfg.Export.FilenamePrefix)

	// Create controllers
	healthController := controller.NewHealthController(healthCheck, cfg.Server.Version)

	saleController := controller.NewSaleController(
		listSalesUseCase,
		recordSaleUseCase,
		updateSaleUseCase,
		deleteSaleUseCase,
		toggleCancellationUseCase,
		updateNotesUseCase,
		clock,
	)

	performanceController := controller.NewPerformanceController(
		getPerformanceUseCase,
		listTiersUseCase,
		quoteCommissionUseCase,
		clock,
	)

	exportController := controller.NewExportController(exportSalesUseCase, clock)

	// Expose metrics only when enabled
	var metricsEndpoint *router.MetricsEndpoint
	if cfg.Metrics.Enabled {
		metricsEndpoint = &router.MetricsEndpoint{
			Path:     cfg.Metrics.Path,
			Handler:  recorder.Handler(),
			Observer: recorder,
		}
	}

	// Create router
	r := router.NewRouter(
		healthController,
		saleController,
		performanceController,
		exportController,
		metricsEndpoint,
	)

	return &Injector{
		Config:  cfg,
		DB:      db,
		Metrics: recorder,
		Router:  r,
	}
}
