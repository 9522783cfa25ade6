package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultStockShortageProbability mirrors random.DefaultStockShortageProbability
	DefaultStockShortageProbability = 0.15

	DefaultUnitLogFirst = 10
	DefaultUnitLogEvery = 100
)

// registerDefaults seeds viper with values that may legitimately be zero,
// which SetDefaults cannot tell apart from "unset"
func registerDefaults(v *viper.Viper) {
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.stock_shortage_probability", DefaultStockShortageProbability)
	v.SetDefault("simulation.unit_log_first", DefaultUnitLogFirst)
	v.SetDefault("simulation.unit_log_every", DefaultUnitLogEvery)

	v.SetDefault("catalog.source", "csv")
	v.SetDefault("catalog.components_path", "")
	v.SetDefault("catalog.products_path", "")
	v.SetDefault("catalog.orders_path", "")

	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 0)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.sslmode", "")
	v.SetDefault("database.path", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stdout")
	v.SetDefault("logging.file_path", "")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.textfile_path", "")
}

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Simulation defaults (seed 0 and probability 0 are meaningful, see registerDefaults)
	if cfg.Simulation.UnitLogFirst == 0 && cfg.Simulation.UnitLogEvery == 0 {
		cfg.Simulation.UnitLogFirst = DefaultUnitLogFirst
		cfg.Simulation.UnitLogEvery = DefaultUnitLogEvery
	}

	// Catalog defaults
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = "csv"
	}
	if cfg.Catalog.ComponentsPath == "" {
		cfg.Catalog.ComponentsPath = "data/components.csv"
	}
	if cfg.Catalog.ProductsPath == "" {
		cfg.Catalog.ProductsPath = "data/products.csv"
	}

	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "factorysim.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "factorysim"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "factorysim"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	// Metrics defaults
	if cfg.Metrics.Enabled && cfg.Metrics.TextfilePath == "" {
		cfg.Metrics.TextfilePath = "factorysim.prom"
	}
}
