package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-postflow/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	r.fields = append(r.fields, fields)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "postflow.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerFallsBackWhenProviderReturnsNil(t *testing.T) {
	logger := ModuleLogger(&stubProvider{}, postModule)
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
}

func TestPostLoggerAnnotatesModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = PostLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != postModule {
		t.Fatalf("expected module %s, got %v", postModule, provider.requested)
	}
	if len(rec.fields) != 1 || rec.fields[0]["module"] != postModule {
		t.Fatalf("expected module field %s, got %v", postModule, rec.fields)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = ModuleLogger(provider, "")
	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestTypestateLoggerRequestsTypestateModule(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = TypestateLogger(provider)
	if len(provider.requested) == 0 || provider.requested[0] != typestateModule {
		t.Fatalf("expected typestate module request, got %v", provider.requested)
	}
}

func TestWithFieldsClonesInput(t *testing.T) {
	rec := &recordingLogger{}
	fields := map[string]any{"post_id": "abc"}
	WithFields(rec, fields)
	fields["post_id"] = "changed"
	if rec.fields[0]["post_id"] != "abc" {
		t.Fatalf("expected fields to be cloned, got %v", rec.fields[0]["post_id"])
	}
}

func TestContextFieldsMerge(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"a": 1})
	ctx = ContextWithFields(ctx, map[string]any{"b": 2})

	fields := ContextFields(ctx)
	if fields["a"] != 1 || fields["b"] != 2 {
		t.Fatalf("expected merged fields, got %v", fields)
	}

	fields["a"] = 99
	if ContextFields(ctx)["a"] != 1 {
		t.Fatal("expected ContextFields to return a copy")
	}
	if ContextFields(context.Background()) != nil {
		t.Fatal("expected nil fields for bare context")
	}
}

func TestOrNoOp(t *testing.T) {
	if _, ok := OrNoOp(nil).(noopLogger); !ok {
		t.Fatal("expected noop logger for nil input")
	}
	rec := &recordingLogger{}
	if OrNoOp(rec) != interfaces.Logger(rec) {
		t.Fatal("expected provided logger to pass through")
	}
}
