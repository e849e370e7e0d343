// Package typestate models each approval stage as its own type. A stage type
// only has the methods that are legal in that stage, so reading a draft or
// approving a published post does not compile.
//
// Transitions hand the content over to the returned value and leave the
// receiver spent. Keep using the returned value; a spent value holds no
// content.
package typestate

import (
	"github.com/goliatone/go-postflow/internal/domain"
	"github.com/goliatone/go-postflow/internal/logging"
	"github.com/goliatone/go-postflow/internal/workflow"
	"github.com/goliatone/go-postflow/pkg/interfaces"
)

// Option configures a new draft.
type Option func(*body)

// WithLogger sets the logger carried through every stage.
func WithLogger(logger interfaces.Logger) Option {
	return func(b *body) {
		b.logger = logging.OrNoOp(logger)
	}
}

// body is the data shared by every stage type.
type body struct {
	content string
	spent   bool
	logger  interfaces.Logger
}

func (b *body) log() interfaces.Logger {
	return logging.OrNoOp(b.logger)
}

// handOff moves the body out of the receiver into a fresh value.
func (b *body) handOff(transition string, from, to domain.Stage) body {
	if b.spent {
		b.log().Warn("post.typestate.spent", "operation", transition, "stage", from)
	}
	next := body{content: b.content, logger: b.logger}
	b.content = ""
	b.spent = true
	b.log().Debug("post.typestate.transition", "operation", transition, "from", from, "to", to)
	return next
}

// DraftPost is a post whose text is still being written. The zero value is
// an empty draft.
type DraftPost struct {
	body
}

// PendingReviewPost is a post waiting for its first approval.
type PendingReviewPost struct {
	body
}

// ApprovedPost is a post in review that has been approved once.
type ApprovedPost struct {
	body
}

// Post is a published post.
type Post struct {
	body
}

// New returns an empty draft.
func New(opts ...Option) *DraftPost {
	draft := &DraftPost{body: body{logger: logging.NoOp()}}
	for _, opt := range opts {
		opt(&draft.body)
	}
	return draft
}

// AddText appends text to the draft.
func (p *DraftPost) AddText(text string) {
	if p.spent {
		p.log().Warn("post.typestate.spent", "operation", "add_text", "stage", domain.StageDraft)
	}
	p.content += text
}

// RequestReview submits the draft for review.
func (p *DraftPost) RequestReview() *PendingReviewPost {
	return &PendingReviewPost{body: p.handOff(workflow.TransitionRequestReview, domain.StageDraft, domain.StagePendingReview)}
}

// Approve records the first approval.
func (p *PendingReviewPost) Approve() *ApprovedPost {
	return &ApprovedPost{body: p.handOff(workflow.TransitionApprove, domain.StagePendingReview, domain.StageApproved)}
}

// Reject returns the post to draft with its content intact.
func (p *PendingReviewPost) Reject() *DraftPost {
	return &DraftPost{body: p.handOff(workflow.TransitionReject, domain.StagePendingReview, domain.StageDraft)}
}

// Approve records the second approval and publishes the post.
func (p *ApprovedPost) Approve() *Post {
	return &Post{body: p.handOff(workflow.TransitionApprove, domain.StageApproved, domain.StagePublished)}
}

// Reject returns the post to draft, dropping the first approval.
func (p *ApprovedPost) Reject() *DraftPost {
	return &DraftPost{body: p.handOff(workflow.TransitionReject, domain.StageApproved, domain.StageDraft)}
}

// Content returns the published text.
func (p *Post) Content() string {
	return p.content
}
