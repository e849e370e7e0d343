// Package post implements a post whose approval behaviour is resolved at
// runtime from its current stage. Operations invoked in a stage that does not
// define them are silent no-ops; nothing here returns an error.
package post

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-postflow/internal/domain"
	"github.com/goliatone/go-postflow/internal/logging"
	"github.com/goliatone/go-postflow/internal/workflow"
	"github.com/goliatone/go-postflow/pkg/interfaces"
)

// Post is a text post moving through the approval workflow. The zero value
// is an empty draft with a nil ID. A Post is owned by one caller at a time
// and is not safe for concurrent use.
type Post struct {
	id      uuid.UUID
	state   state
	content string
	logger  interfaces.Logger
}

var definition = workflow.PostDefinition()

// Option configures a Post.
type Option func(*Post)

// WithLogger sets the logger used to trace transitions.
func WithLogger(logger interfaces.Logger) Option {
	return func(p *Post) {
		p.logger = logging.OrNoOp(logger)
	}
}

// WithID overrides the generated post identifier.
func WithID(id uuid.UUID) Option {
	return func(p *Post) {
		if id != uuid.Nil {
			p.id = id
		}
	}
}

// New returns an empty post in the draft stage.
func New(opts ...Option) *Post {
	p := &Post{
		id:     uuid.New(),
		state:  draftState,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = logging.WithFields(p.logger, map[string]any{"post_id": p.id.String()})
	return p
}

// ID returns the post identifier.
func (p *Post) ID() uuid.UUID {
	return p.id
}

// Stage returns the current lifecycle stage. A post in review with one
// approval reports domain.StageApproved.
func (p *Post) Stage() domain.Stage {
	return p.state.externalStage()
}

// AddText appends text while the post is a draft.
func (p *Post) AddText(text string) {
	next := p.state.appendText(p.content, text)
	if p.Stage() != domain.StageDraft {
		p.log().Trace("post.add_text.ignored", "stage", p.Stage())
	}
	p.content = next
}

// Content returns the post text once published and "" before that.
func (p *Post) Content() string {
	return p.state.visible(p.content)
}

// RequestReview moves a draft into review with no approvals.
func (p *Post) RequestReview() {
	p.transition(workflow.TransitionRequestReview)
}

// Approve records an approval while in review. The second approval publishes
// the post.
func (p *Post) Approve() {
	p.transition(workflow.TransitionApprove)
}

// Reject sends a post in review back to draft, discarding its approvals.
func (p *Post) Reject() {
	p.transition(workflow.TransitionReject)
}

// AvailableTransitions lists the workflow transitions that would change the
// post from its current stage.
func (p *Post) AvailableTransitions() []interfaces.WorkflowTransition {
	return workflow.AvailableTransitions(definition, p.Stage())
}

func (p *Post) transition(operation string) {
	current := p.state.resolved()
	from := current.externalStage()
	next := current.apply(operation)
	if next == current {
		p.log().Trace("post.transition.noop", "operation", operation, "stage", from)
		return
	}
	p.state = next

	to := p.Stage()
	declared, ok := workflow.Lookup(definition, operation, from)
	if !ok || declared.To != to {
		p.log().Warn("post.transition.undeclared",
			"operation", operation,
			"from", from,
			"to", to,
		)
		return
	}
	p.log().Debug("post.transition",
		"operation", operation,
		"from", from,
		"to", to,
	)
}

func (p *Post) log() interfaces.Logger {
	return logging.OrNoOp(p.logger)
}
