package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	applog "github.com/andrescamacho/factorysim-go/internal/application/logging"
	"github.com/andrescamacho/factorysim-go/internal/application/production"
	"github.com/andrescamacho/factorysim-go/internal/application/production/commands"
	"github.com/andrescamacho/factorysim-go/internal/application/production/queries"
	"github.com/andrescamacho/factorysim-go/internal/domain/manufacturing"
	"github.com/andrescamacho/factorysim-go/internal/domain/shared"
	"github.com/andrescamacho/factorysim-go/internal/infrastructure/config"
	"github.com/andrescamacho/factorysim-go/internal/infrastructure/random"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	var (
		componentsPath      string
		productsPath        string
		ordersPath          string
		source              string
		metricsFile         string
		seed                uint64
		shortageProbability float64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every planned production order",
		Long: `Load the catalog, plan one production order per product and run them
in sequence. Orders share the same stock: later orders see what earlier
orders consumed.

Flags override the configuration file and FACTORY_* environment variables.

Examples:
  factorysim run
  factorysim run --components data/components.csv --products data/products.csv
  factorysim run --orders orders.yaml --seed 42
  factorysim run --shortage-probability 0 --metrics-file factorysim.prom`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("components") {
				cfg.Catalog.ComponentsPath = componentsPath
			}
			if flags.Changed("products") {
				cfg.Catalog.ProductsPath = productsPath
			}
			if flags.Changed("orders") {
				cfg.Catalog.OrdersPath = ordersPath
			}
			if flags.Changed("source") {
				cfg.Catalog.Source = source
			}
			if flags.Changed("seed") {
				cfg.Simulation.Seed = seed
			}
			if flags.Changed("shortage-probability") {
				cfg.Simulation.StockShortageProbability = shortageProbability
			}
			if flags.Changed("metrics-file") {
				cfg.Metrics.Enabled = true
				cfg.Metrics.TextfilePath = metricsFile
			}

			if err := config.ValidateConfig(cfg); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			return runProduction(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVar(&componentsPath, "components", "", "Components CSV file")
	cmd.Flags().StringVar(&productsPath, "products", "", "Products CSV file")
	cmd.Flags().StringVar(&ordersPath, "orders", "", "YAML orders manifest (replaces product quantities)")
	cmd.Flags().StringVar(&source, "source", "", "Catalog source: csv or database")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 = time-seeded)")
	cmd.Flags().Float64Var(&shortageProbability, "shortage-probability", config.DefaultStockShortageProbability,
		"Probability of an injected stock shortage per stock check")

	return cmd
}

// runProduction loads the catalog, plans the orders and runs the batch,
// writing every order report and the summary to out
func runProduction(ctx context.Context, out io.Writer, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	app, ctx, err := newApplication(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	logger := applog.LoggerFromContext(ctx)

	response, err := app.mediator.Send(ctx, &queries.GetCatalogQuery{})
	if err != nil {
		return err
	}
	catalogResp := response.(*queries.GetCatalogResponse)

	if app.csvSource != nil {
		logger.Log(applog.LevelInfo, "catalog loaded", map[string]interface{}{
			"components_loaded":  app.csvSource.LastResult().ComponentsLoaded,
			"components_skipped": app.csvSource.LastResult().ComponentsSkipped,
			"products_loaded":    app.csvSource.LastResult().ProductsLoaded,
			"products_skipped":   app.csvSource.LastResult().ProductsSkipped,
		})
	}

	orders, err := production.PlanOrders(catalogResp.Catalog, catalogResp.Orders, shared.NewRealClock())
	if err != nil {
		return err
	}

	generator, err := newGenerator(cfg.Simulation)
	if err != nil {
		return err
	}
	logger.Log(applog.LevelInfo, "simulation seeded", map[string]interface{}{
		"seed":                       generator.Seed(),
		"stock_shortage_probability": cfg.Simulation.StockShortageProbability,
		"orders":                     len(orders),
	})

	response, err = app.mediator.Send(ctx, &commands.RunProductionBatchCommand{
		Orders:    orders,
		Generator: generator,
	})
	if err != nil {
		return err
	}
	batch := response.(*commands.RunProductionBatchResponse)

	printBatch(out, orders, batch)

	if err := app.flushMetrics(); err != nil {
		return err
	}
	return nil
}

func newGenerator(cfg config.SimulationConfig) (*random.Generator, error) {
	if cfg.Seed == 0 {
		return random.NewTimeSeededGenerator(cfg.StockShortageProbability)
	}
	return random.NewGenerator(cfg.Seed, cfg.StockShortageProbability)
}

func printBatch(out io.Writer, orders []*manufacturing.ProductionOrder, batch *commands.RunProductionBatchResponse) {
	for i, result := range batch.Results {
		fmt.Fprintln(out, orders[i].String())
		fmt.Fprintln(out, result.Report)
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, batch.SummaryReport)
}
