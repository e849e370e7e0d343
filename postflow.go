package postflow

import (
	"context"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-postflow/internal/domain"
	"github.com/goliatone/go-postflow/internal/logging"
	"github.com/goliatone/go-postflow/internal/logging/gologger"
	"github.com/goliatone/go-postflow/internal/post"
	"github.com/goliatone/go-postflow/internal/typestate"
	"github.com/goliatone/go-postflow/internal/workflow"
	"github.com/goliatone/go-postflow/pkg/interfaces"
)

const (
	configInvalidCode   = "CONFIG_INVALID"
	loggerSetupFailCode = "LOGGER_SETUP_FAILED"
	workflowInvalidCode = "WORKFLOW_INVALID"
)

// Stage exports the lifecycle stage type.
type Stage = domain.Stage

const (
	StageDraft         = domain.StageDraft
	StagePendingReview = domain.StagePendingReview
	StageApproved      = domain.StageApproved
	StagePublished     = domain.StagePublished
)

// Post exports the dynamic-state post.
type Post = post.Post

// DraftPost exports the typestate draft stage.
type DraftPost = typestate.DraftPost

// PendingReviewPost exports the typestate review stage.
type PendingReviewPost = typestate.PendingReviewPost

// ApprovedPost exports the typestate approved-once stage.
type ApprovedPost = typestate.ApprovedPost

// PublishedPost exports the typestate published stage.
type PublishedPost = typestate.Post

// Module is the top level postflow facade. It owns the logger provider and
// hands out posts wired to it.
type Module struct {
	provider   interfaces.LoggerProvider
	definition interfaces.WorkflowDefinition
}

// New validates cfg and the post workflow, then constructs a Module.
func New(cfg Config) (*Module, error) {
	return newModule(cfg, workflow.PostDefinition())
}

func newModule(cfg Config, definition interfaces.WorkflowDefinition) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "postflow configuration invalid").
			WithTextCode(configInvalidCode)
	}

	if err := workflow.ValidateDefinition(definition); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "postflow workflow definition invalid").
			WithTextCode(workflowInvalidCode)
	}

	m := &Module{definition: definition}
	if cfg.Logging.Enabled {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "postflow logger setup failed").
				WithTextCode(loggerSetupFailCode)
		}
		m.provider = provider
	}
	return m, nil
}

// NewPost returns an empty dynamic-state post in draft.
func (m *Module) NewPost() *Post {
	return post.New(post.WithLogger(logging.PostLogger(m.provider)))
}

// NewDraft returns an empty typestate draft.
func (m *Module) NewDraft() *DraftPost {
	return typestate.New(typestate.WithLogger(logging.TypestateLogger(m.provider)))
}

// Workflow returns the approval workflow both post kinds follow.
func (m *Module) Workflow() interfaces.WorkflowDefinition {
	return m.definition
}

// Logger returns a module-scoped logger for host code.
func (m *Module) Logger(name string) interfaces.Logger {
	return logging.ModuleLogger(m.provider, name)
}

// ContextWithFields returns ctx carrying fields that loggers obtained from a
// Module attach to every entry once bound with WithContext.
func ContextWithFields(ctx context.Context, fields map[string]any) context.Context {
	return logging.ContextWithFields(ctx, fields)
}
