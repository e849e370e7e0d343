package postflow

import (
	"errors"
	"testing"
)

func TestDefaultConfigDisablesLogging(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Logging.Enabled {
		t.Fatal("expected logging disabled by default")
	}
	if cfg.Logging.Provider != "gologger" {
		t.Fatalf("expected gologger provider default, got %q", cfg.Logging.Provider)
	}
}

func TestConfigErrorsAreExported(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Enabled = true
	cfg.Logging.Level = "loud"

	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}
