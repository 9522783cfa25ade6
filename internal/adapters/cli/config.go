package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factorysim-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect factorysim configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (FACTORY_* prefix, DATABASE_URL)
2. Config file (config.yaml)
3. Default values

Examples:
  factorysim config show
  factorysim config show --json
  factorysim --config configs/config.yaml config show`,
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long: `Display the effective configuration after applying environment variables,
the config file and defaults. Database passwords are masked.

Example:
  factorysim config show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.DefaultConfig()
			}

			if asJSON {
				masked := *cfg
				masked.Database.URL = maskPassword(masked.Database.URL)
				if masked.Database.Password != "" {
					masked.Database.Password = passwordMask
				}
				fmt.Fprintln(out, prettyPrint(masked))
				return nil
			}

			printConfig(out, cfg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print configuration as JSON")

	return cmd
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "factorysim Configuration")
	fmt.Fprintln(out, "========================")

	fmt.Fprintln(out, "Simulation:")
	if cfg.Simulation.Seed == 0 {
		fmt.Fprintf(out, "  Seed:             (time-seeded)\n")
	} else {
		fmt.Fprintf(out, "  Seed:             %d\n", cfg.Simulation.Seed)
	}
	fmt.Fprintf(out, "  Shortage Prob.:   %.2f\n", cfg.Simulation.StockShortageProbability)
	fmt.Fprintf(out, "  Unit Log:         first %d, then every %d\n",
		cfg.Simulation.UnitLogFirst, cfg.Simulation.UnitLogEvery)

	fmt.Fprintln(out, "\nCatalog:")
	fmt.Fprintf(out, "  Source:           %s\n", cfg.Catalog.Source)
	fmt.Fprintf(out, "  Components:       %s\n", cfg.Catalog.ComponentsPath)
	fmt.Fprintf(out, "  Products:         %s\n", cfg.Catalog.ProductsPath)
	if cfg.Catalog.OrdersPath != "" {
		fmt.Fprintf(out, "  Orders Manifest:  %s\n", cfg.Catalog.OrdersPath)
	} else {
		fmt.Fprintf(out, "  Orders Manifest:  (not set)\n")
	}

	fmt.Fprintln(out, "\nDatabase:")
	fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
	switch {
	case cfg.Database.URL != "":
		fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
	case cfg.Database.Type == "sqlite":
		fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
	default:
		fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
		fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
		fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
		fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
		if cfg.Database.Password != "" {
			fmt.Fprintf(out, "  Password:         %s\n", passwordMask)
		}
	}
	fmt.Fprintf(out, "  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)

	fmt.Fprintln(out, "\nLogging:")
	fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
	fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)
	if cfg.Logging.Output == "file" {
		fmt.Fprintf(out, "  File:             %s\n", cfg.Logging.FilePath)
	}

	fmt.Fprintln(out, "\nMetrics:")
	fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
	if cfg.Metrics.Enabled {
		fmt.Fprintf(out, "  Textfile:         %s\n", cfg.Metrics.TextfilePath)
	}
}
