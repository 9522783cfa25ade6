package config

// SimulationConfig holds the knobs of the production simulation
type SimulationConfig struct {
	// Seed for the outcome generator (0 = seed from the wall clock)
	Seed uint64 `mapstructure:"seed"`

	// Probability that a stock check is failed on purpose (0.0 - 1.0)
	StockShortageProbability float64 `mapstructure:"stock_shortage_probability" validate:"min=0,max=1"`

	// Per-unit transition logs: the first N units of an order are logged,
	// then one unit in every M
	UnitLogFirst int `mapstructure:"unit_log_first" validate:"min=0"`
	UnitLogEvery int `mapstructure:"unit_log_every" validate:"min=0"`
}

// CatalogConfig tells the CLI where component and product definitions live
type CatalogConfig struct {
	// Source of the catalog: "csv" files or the "database"
	Source string `mapstructure:"source" validate:"required,oneof=csv database"`

	// Semicolon-separated component and product files
	ComponentsPath string `mapstructure:"components_path" validate:"required_if=Source csv"`
	ProductsPath   string `mapstructure:"products_path" validate:"required_if=Source csv"`

	// Optional YAML manifest overriding order quantities
	OrdersPath string `mapstructure:"orders_path"`
}
