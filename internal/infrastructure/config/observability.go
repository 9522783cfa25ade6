package config

// LoggingConfig selects where structured logs go and how much is written
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr file"`

	// Only read when Output is "file"
	FilePath string `mapstructure:"file_path" validate:"required_if=Output file"`

	// Adds file:line to every entry
	IncludeCaller bool `mapstructure:"include_caller"`
}

// MetricsConfig controls the production counters. Runs are short-lived, so
// metrics are exported once as a node_exporter textfile instead of scraped.
type MetricsConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	TextfilePath string `mapstructure:"textfile_path"`
}
