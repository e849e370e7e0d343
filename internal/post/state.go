package post

import (
	"github.com/goliatone/go-postflow/internal/domain"
	"github.com/goliatone/go-postflow/internal/workflow"
)

// requiredApprovals is the number of approvals a post needs while in review
// before it publishes.
const requiredApprovals = 2

// state is the tagged lifecycle value of a post. approvals only carries
// meaning while stage is pending review and is zero otherwise.
type state struct {
	stage     domain.Stage
	approvals int
}

var draftState = state{stage: domain.StageDraft}

// resolved maps the zero state to draft.
func (s state) resolved() state {
	if s.stage == "" {
		return draftState
	}
	return s
}

// apply resolves (state, operation) to the next state. Pairs without a rule
// return the receiver unchanged.
func (s state) apply(operation string) state {
	s = s.resolved()
	switch s.stage {
	case domain.StageDraft:
		if operation == workflow.TransitionRequestReview {
			return state{stage: domain.StagePendingReview}
		}
	case domain.StagePendingReview:
		switch operation {
		case workflow.TransitionApprove:
			approvals := s.approvals + 1
			if approvals >= requiredApprovals {
				return state{stage: domain.StagePublished}
			}
			return state{stage: domain.StagePendingReview, approvals: approvals}
		case workflow.TransitionReject:
			return draftState
		}
	}
	return s
}

// appendText returns current extended by text in draft, and current otherwise.
func (s state) appendText(current, text string) string {
	if s.resolved().stage != domain.StageDraft {
		return current
	}
	return current + text
}

// visible returns the content readers may see in this state.
func (s state) visible(content string) string {
	if s.stage != domain.StagePublished {
		return ""
	}
	return content
}

// externalStage reports a review with one approval as the approved stage.
func (s state) externalStage() domain.Stage {
	s = s.resolved()
	if s.stage == domain.StagePendingReview && s.approvals > 0 {
		return domain.StageApproved
	}
	return s.stage
}
