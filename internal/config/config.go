// Package config provides centralized configuration management for the tool.
// It loads configuration from environment variables with defaults that
// reproduce the plain invocation (no environment, fixed relative path) and
// validates all settings on startup to fail fast on misconfiguration.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Schema  SchemaConfig
	Logging LoggingConfig
}

// SchemaConfig holds settings for the schema file being augmented.
type SchemaConfig struct {
	// Path is the column-definition file, relative to the working directory (default: CSV-Columns.csv)
	Path string `env:"SCHEMA_PATH" default:"CSV-Columns.csv"`

	// DryRun writes the augmented table to stdout and leaves the file untouched (default: false)
	DryRun bool `env:"AUGMENT_DRY_RUN" default:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
