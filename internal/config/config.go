// Package config provides centralized configuration management for prodtable.
// It loads configuration from environment variables with defaults that
// reproduce the fixed behavior of the tool, and validates all settings on
// startup to fail fast on misconfiguration.
package config

// MaxResourceSize is the largest accepted CATALOG_MAX_SIZE (1GB). The whole
// resource is held in memory.
const MaxResourceSize int64 = 1 << 30

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Source  SourceConfig
	Parse   ParseConfig
	Logging LoggingConfig
}

// SourceConfig holds settings for locating the product CSV.
type SourceConfig struct {
	// Name is the resource file name (default: products.csv)
	Name string `env:"CATALOG_RESOURCE" default:"products.csv"`

	// Dir reads the resource from this directory instead of the bundled copy
	Dir string `env:"CATALOG_RESOURCE_DIR"`

	// MaxSize is the maximum resource size in bytes (default: 10MB)
	MaxSize int64 `env:"CATALOG_MAX_SIZE" default:"10485760"`
}

// ParseConfig holds CSV parsing settings.
type ParseConfig struct {
	// SkipTrailingBlank ignores empty lines after the last data row (default: true)
	SkipTrailingBlank bool `env:"PARSE_SKIP_TRAILING_BLANK" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `env:"LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Bundled reports whether the resource comes from the embedded bundle.
func (c *SourceConfig) Bundled() bool {
	return c.Dir == ""
}
