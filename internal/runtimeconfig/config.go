package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrLoggingProviderRequired = errors.New("postflow config: logging provider is required when logging is enabled")
var ErrLoggingProviderUnknown = errors.New("postflow config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("postflow config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("postflow config: logging format is invalid")

const (
	// LoggingProviderGoLogger selects the github.com/goliatone/go-logger backend.
	LoggingProviderGoLogger = "gologger"
)

// Config aggregates runtime options for the postflow module.
type Config struct {
	Logging LoggingConfig `json:"logging"`
}

// LoggingConfig captures provider-specific options for runtime logging.
// Logging is off unless Enabled is set; posts then use a no-op logger.
type LoggingConfig struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider"`
	Level     string   `json:"level"`
	Format    string   `json:"format"`
	AddSource bool     `json:"add_source"`
	Focus     []string `json:"focus"`
}

// DefaultConfig returns the defaults used when callers do not override them.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Enabled:  false,
			Provider: LoggingProviderGoLogger,
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate performs consistency checks on enabled features.
func (cfg Config) Validate() error {
	if !cfg.Logging.Enabled {
		return nil
	}

	logging := cfg.Logging.normalized()
	err := validation.ValidateStruct(&logging,
		validation.Field(&logging.Provider, validation.Required, validation.In(LoggingProviderGoLogger)),
		validation.Field(&logging.Level, validation.In("trace", "debug", "info", "warn", "warning", "error", "fatal")),
		validation.Field(&logging.Format, validation.In("json", "console", "pretty")),
	)
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	switch {
	case fieldErrs["provider"] != nil && logging.Provider == "":
		return ErrLoggingProviderRequired
	case fieldErrs["provider"] != nil:
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, logging.Provider)
	case fieldErrs["level"] != nil:
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, logging.Level)
	case fieldErrs["format"] != nil:
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, logging.Format)
	}
	return err
}

func (cfg LoggingConfig) normalized() LoggingConfig {
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	cfg.Level = strings.ToLower(strings.TrimSpace(cfg.Level))
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	return cfg
}
