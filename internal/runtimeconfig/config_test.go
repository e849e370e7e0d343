package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}

	cfg.Logging.Enabled = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults with logging enabled to validate, got %v", err)
	}
}

func TestValidateSkipsDisabledLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected disabled logging to skip validation, got %v", err)
	}
}

func TestValidateNormalizesInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Enabled = true
	cfg.Logging.Provider = " GoLogger "
	cfg.Logging.Level = "WARNING"
	cfg.Logging.Format = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected normalized input to validate, got %v", err)
	}
}

func TestValidateLoggingErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*LoggingConfig)
		want   error
	}{
		{name: "missing provider", mutate: func(c *LoggingConfig) { c.Provider = "  " }, want: ErrLoggingProviderRequired},
		{name: "unknown provider", mutate: func(c *LoggingConfig) { c.Provider = "syslog" }, want: ErrLoggingProviderUnknown},
		{name: "bad level", mutate: func(c *LoggingConfig) { c.Level = "verbose" }, want: ErrLoggingLevelInvalid},
		{name: "bad format", mutate: func(c *LoggingConfig) { c.Format = "xml" }, want: ErrLoggingFormatInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Logging.Enabled = true
			tc.mutate(&cfg.Logging)

			err := cfg.Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
