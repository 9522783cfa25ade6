package cli

import (
	"context"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/andrescamacho/factorysim-go/internal/adapters/filesource"
	"github.com/andrescamacho/factorysim-go/internal/adapters/metrics"
	"github.com/andrescamacho/factorysim-go/internal/adapters/persistence"
	applog "github.com/andrescamacho/factorysim-go/internal/application/logging"
	"github.com/andrescamacho/factorysim-go/internal/application/mediator"
	"github.com/andrescamacho/factorysim-go/internal/application/production"
	"github.com/andrescamacho/factorysim-go/internal/application/production/commands"
	"github.com/andrescamacho/factorysim-go/internal/application/production/queries"
	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
	"github.com/andrescamacho/factorysim-go/internal/domain/shared"
	"github.com/andrescamacho/factorysim-go/internal/infrastructure/config"
	"github.com/andrescamacho/factorysim-go/internal/infrastructure/database"
	"github.com/andrescamacho/factorysim-go/internal/infrastructure/logging"
)

// application holds everything a command needs, wired from the configuration
type application struct {
	cfg      *config.Config
	logger   *logging.ZerologLogger
	mediator mediator.Mediator
	source   inventory.CatalogSource
	db       *gorm.DB

	// csvSource is set when the catalog comes from files, for load counts
	csvSource *filesource.CSVCatalogSource
}

// loadConfig loads the configuration selected by the global flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// newApplication builds the logger, catalog source, metrics and mediator.
// The returned context carries the logger.
func newApplication(ctx context.Context, cfg *config.Config) (*application, context.Context, error) {
	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, ctx, fmt.Errorf("failed to create logger: %w", err)
	}
	ctx = applog.WithLogger(ctx, logger)

	app := &application{cfg: cfg, logger: logger}

	if err := app.initSource(); err != nil {
		app.Close()
		return nil, ctx, err
	}

	recorder, err := app.initMetrics()
	if err != nil {
		app.Close()
		return nil, ctx, err
	}

	app.mediator = mediator.NewMediator()
	app.mediator.Use(mediator.LoggingMiddleware)

	sampling := production.UnitLogSampling{
		First: cfg.Simulation.UnitLogFirst,
		Every: cfg.Simulation.UnitLogEvery,
	}
	orderHandler := commands.NewRunProductionOrderHandler(recorder, sampling, shared.NewRealClock())
	batchHandler := commands.NewRunProductionBatchHandler(app.mediator)
	catalogHandler := queries.NewGetCatalogHandler(app.source)

	if err := mediator.RegisterHandler[*commands.RunProductionOrderCommand](app.mediator, orderHandler); err != nil {
		app.Close()
		return nil, ctx, err
	}
	if err := mediator.RegisterHandler[*commands.RunProductionBatchCommand](app.mediator, batchHandler); err != nil {
		app.Close()
		return nil, ctx, err
	}
	if err := mediator.RegisterHandler[*queries.GetCatalogQuery](app.mediator, catalogHandler); err != nil {
		app.Close()
		return nil, ctx, err
	}

	return app, ctx, nil
}

func (a *application) initSource() error {
	switch a.cfg.Catalog.Source {
	case "database":
		db, err := a.openDatabase()
		if err != nil {
			return err
		}
		repo := persistence.NewGormCatalogRepository(db)
		if a.cfg.Catalog.OrdersPath == "" {
			a.source = repo
		} else {
			a.source = &manifestOverride{source: repo, ordersPath: a.cfg.Catalog.OrdersPath}
		}
	default:
		a.csvSource = filesource.NewCSVCatalogSource(
			a.cfg.Catalog.ComponentsPath,
			a.cfg.Catalog.ProductsPath,
			a.cfg.Catalog.OrdersPath,
		)
		a.source = a.csvSource
	}
	return nil
}

// openDatabase connects and migrates the catalog schema once per application
func (a *application) openDatabase() (*gorm.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := database.NewConnection(&a.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, err
	}
	a.db = db
	return db, nil
}

func (a *application) initMetrics() (production.MetricsRecorder, error) {
	if !a.cfg.Metrics.Enabled {
		return production.NoOpMetrics{}, nil
	}
	metrics.InitRegistry()
	collector := metrics.NewProductionMetricsCollector()
	if err := collector.Register(); err != nil {
		return nil, err
	}
	return collector, nil
}

// flushMetrics writes the textfile when metrics are enabled
func (a *application) flushMetrics() error {
	if !metrics.IsEnabled() || a.cfg.Metrics.TextfilePath == "" {
		return nil
	}
	return metrics.WriteToTextfile(a.cfg.Metrics.TextfilePath)
}

// Close releases the database connection and the log file
func (a *application) Close() {
	if a.db != nil {
		database.Close(a.db)
		a.db = nil
	}
	if a.logger != nil {
		a.logger.Close()
	}
}

// manifestOverride replaces the quantities stored with the catalog by an
// orders manifest
type manifestOverride struct {
	source     inventory.CatalogSource
	ordersPath string
}

func (m *manifestOverride) Load(ctx context.Context) (*inventory.Catalog, []inventory.PlannedOrder, error) {
	catalog, _, err := m.source.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(m.ordersPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open orders manifest: %w", err)
	}
	defer f.Close()

	orders, err := filesource.LoadOrdersManifest(f)
	if err != nil {
		return nil, nil, err
	}
	return catalog, orders, nil
}
