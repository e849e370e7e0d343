package logging

import (
	"context"

	"github.com/goliatone/go-postflow/pkg/interfaces"
)

const (
	rootModule      = "postflow"
	postModule      = "postflow.post"
	typestateModule = "postflow.typestate"
)

// ModuleLogger returns a logger scoped to module. A nil provider, or one that
// returns nil, yields the no-op logger. The module name is attached as the
// "module" field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// PostLogger returns the logger namespace used by dynamic-state posts.
func PostLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, postModule)
}

// TypestateLogger returns the logger namespace used by typestate posts.
func TypestateLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, typestateModule)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
