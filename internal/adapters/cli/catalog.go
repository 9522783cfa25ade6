package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factorysim-go/internal/adapters/filesource"
	"github.com/andrescamacho/factorysim-go/internal/adapters/persistence"
	applog "github.com/andrescamacho/factorysim-go/internal/application/logging"
	"github.com/andrescamacho/factorysim-go/internal/application/production/queries"
	"github.com/andrescamacho/factorysim-go/internal/infrastructure/config"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the component and product catalog",
		Long: `Manage the catalog of components and composite products.

The catalog is read from CSV files or from the catalog database, depending on
catalog.source. Use import to copy the CSV files into the database.

Examples:
  factorysim catalog list
  factorysim catalog list --source database
  factorysim catalog import --components data/components.csv --products data/products.csv`,
	}

	// Add subcommands
	cmd.AddCommand(newCatalogImportCommand())
	cmd.AddCommand(newCatalogListCommand())

	return cmd
}

// newCatalogImportCommand creates the catalog import subcommand
func newCatalogImportCommand() *cobra.Command {
	var componentsPath, productsPath, ordersPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the CSV catalog into the database",
		Long: `Read the components and products CSV files and replace the catalog stored
in the configured database. Planned quantities are stored with each product;
an orders manifest, when given, replaces them.

Example:
  factorysim catalog import --components data/components.csv --products data/products.csv`,
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

			return importCatalog(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVar(&componentsPath, "components", "", "Components CSV file")
	cmd.Flags().StringVar(&productsPath, "products", "", "Products CSV file")
	cmd.Flags().StringVar(&ordersPath, "orders", "", "YAML orders manifest")

	return cmd
}

// importCatalog loads the CSV catalog and saves it to the catalog database
func importCatalog(ctx context.Context, out io.Writer, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Reading always happens from files; the database is only the target
	cfg.Catalog.Source = "csv"
	if err := config.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	app, ctx, err := newApplication(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	response, err := app.mediator.Send(ctx, &queries.GetCatalogQuery{})
	if err != nil {
		return err
	}
	catalogResp := response.(*queries.GetCatalogResponse)

	db, err := app.openDatabase()
	if err != nil {
		return err
	}

	repo := persistence.NewGormCatalogRepository(db)
	if err := repo.Save(ctx, catalogResp.Catalog, catalogResp.Orders); err != nil {
		return err
	}

	applog.LoggerFromContext(ctx).Log(applog.LevelInfo, "catalog imported", map[string]interface{}{
		"components":    len(catalogResp.Catalog.Components()),
		"products":      len(catalogResp.Catalog.Products()),
		"database_type": cfg.Database.Type,
	})

	fmt.Fprintf(out, "Imported %d components and %d products into %s database\n",
		len(catalogResp.Catalog.Components()), len(catalogResp.Catalog.Products()), cfg.Database.Type)
	printLoadResult(out, app.csvSource)
	return nil
}

// newCatalogListCommand creates the catalog list subcommand
func newCatalogListCommand() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List components, products and planned orders",
		Long: `Print a report line for every component and product in the catalog,
followed by the planned order quantities.

Examples:
  factorysim catalog list
  factorysim catalog list --source database`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("source") {
				cfg.Catalog.Source = source
				if err := config.ValidateConfig(cfg); err != nil {
					return fmt.Errorf("invalid configuration: %w", err)
				}
			}
			return listCatalog(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Catalog source: csv or database")

	return cmd
}

// listCatalog prints the catalog reports from the configured source
func listCatalog(ctx context.Context, out io.Writer, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	app, ctx, err := newApplication(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	response, err := app.mediator.Send(ctx, &queries.GetCatalogQuery{})
	if err != nil {
		return err
	}
	catalogResp := response.(*queries.GetCatalogResponse)

	fmt.Fprintln(out, "Components:")
	for _, line := range catalogResp.ComponentReports {
		fmt.Fprintf(out, "  %s\n", line)
	}

	fmt.Fprintln(out, "\nProducts:")
	for _, line := range catalogResp.ProductReports {
		fmt.Fprintf(out, "  %s\n", line)
	}

	fmt.Fprintln(out, "\nPlanned Orders:")
	if len(catalogResp.Orders) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, order := range catalogResp.Orders {
		fmt.Fprintf(out, "  %-30s %d\n", order.ProductID, order.Quantity)
	}

	printLoadResult(out, app.csvSource)
	return nil
}

func printLoadResult(out io.Writer, source *filesource.CSVCatalogSource) {
	if source == nil {
		return
	}
	fmt.Fprintf(out, "\n%s\n", source.LastResult())
}
