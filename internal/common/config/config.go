// internal/common/config/config.go
package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Runner   RunnerConfig   `mapstructure:"runner"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Registry RegistryConfig `mapstructure:"registry"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// RunnerConfig holds the dispatcher boundary settings.
type RunnerConfig struct {
	// DefaultOperation is used when the caller supplies no operation name.
	DefaultOperation string `mapstructure:"default_operation"`
	// MaxTextLength is advisory: longer inputs are processed but logged as
	// a warning. The validate operation keeps its own fixed bound.
	MaxTextLength int `mapstructure:"max_text_length"`
	// OutputPath, when set, overrides the GITHUB_OUTPUT-style sink.
	OutputPath string `mapstructure:"output_path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

// Validate checks the fields the runner actually depends on.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Logging,
		validation.Field(&c.Logging.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Logging.Format, validation.Required, validation.In("console", "json")),
	); err != nil {
		return err
	}

	return validation.ValidateStruct(&c.Runner,
		validation.Field(&c.Runner.DefaultOperation, validation.Required,
			validation.Match(operationNamePattern).Error("must be a lowercase operation name")),
		validation.Field(&c.Runner.MaxTextLength, validation.Min(1)),
	)
}
