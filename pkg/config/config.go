package config

import (
	"context"
	"time"
)

// Config is the complete configuration of the minmax tool.
type Config struct {
	Report  ReportConfig  `koanf:"report"  json:"report"  yaml:"report"  validate:"required"`
	Runtime RuntimeConfig `koanf:"runtime" json:"runtime" yaml:"runtime" validate:"required"`
}

// ReportConfig controls how reports are built and persisted.
type ReportConfig struct {
	Dir      string `koanf:"dir"       json:"dir"       yaml:"dir"       validate:"required"     env:"MINMAX_REPORT_DIR"`
	FileName string `koanf:"file_name" json:"file_name" yaml:"file_name" validate:"required"     env:"MINMAX_REPORT_FILE_NAME"`
	Indent   int    `koanf:"indent"    json:"indent"    yaml:"indent"    validate:"min=0,max=8"  env:"MINMAX_REPORT_INDENT"`
	Author   string `koanf:"author"    json:"author"    yaml:"author"                            env:"MINMAX_REPORT_AUTHOR"`
}

// RuntimeConfig contains logging behavior.
type RuntimeConfig struct {
	LogLevel  string `koanf:"log_level"  json:"log_level"  yaml:"log_level"  validate:"oneof=debug info warn error disabled" env:"MINMAX_RUNTIME_LOG_LEVEL"`
	LogJSON   bool   `koanf:"log_json"   json:"log_json"   yaml:"log_json"                                                  env:"MINMAX_RUNTIME_LOG_JSON"`
	LogSource bool   `koanf:"log_source" json:"log_source" yaml:"log_source"                                                env:"MINMAX_RUNTIME_LOG_SOURCE"`
}

// Service loads and validates configuration.
type Service interface {
	// Load loads configuration from the specified sources with precedence order.
	Load(ctx context.Context, sources ...Source) (*Config, error)
	// Validate checks if the configuration meets all validation requirements.
	Validate(config *Config) error
	// GetSource returns the source type that provided a configuration key.
	GetSource(key string) SourceType
	// GetSources returns a copy of the source recorded for every loaded key.
	GetSources() map[string]SourceType
}

// Source provides raw configuration data.
type Source interface {
	// Load reads configuration from the source.
	Load() (map[string]any, error)
	// Type returns the source type identifier.
	Type() SourceType
}

// SourceType identifies the type of configuration source.
type SourceType string

const (
	SourceCLI     SourceType = "cli"
	SourceYAML    SourceType = "yaml"
	SourceEnv     SourceType = "env"
	SourceDefault SourceType = "default"
)

// Metadata contains metadata about configuration sources.
type Metadata struct {
	Sources  map[string]SourceType `json:"sources"`
	LoadedAt time.Time             `json:"loaded_at"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Dir:      "data",
			FileName: "reporte_normalizacion.json",
			Indent:   4,
		},
		Runtime: RuntimeConfig{
			LogLevel: "info",
		},
	}
}

// Load loads configuration using the default service.
func Load(ctx context.Context, sources ...Source) (*Config, error) {
	return NewService().Load(ctx, sources...)
}
