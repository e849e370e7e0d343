package domain

import (
	"testing"

	"github.com/goliatone/go-postflow/pkg/interfaces"
)

func TestNormalizeStage(t *testing.T) {
	cases := map[string]Stage{
		"":                StageDraft,
		"   ":             StageDraft,
		"Draft":           StageDraft,
		" pending-review": StagePendingReview,
		"review":          StagePendingReview,
		"APPROVED":        StageApproved,
		"published":       StagePublished,
		"Archived":        Stage("archived"),
	}
	for input, want := range cases {
		if got := NormalizeStage(input); got != want {
			t.Fatalf("NormalizeStage(%q): want %q got %q", input, want, got)
		}
	}
}

func TestStageMatchesWorkflowState(t *testing.T) {
	var state interfaces.WorkflowState = StagePendingReview
	if state.String() != "pending_review" {
		t.Fatalf("expected pending_review, got %q", state.String())
	}
	if NormalizeStage(state.String()) != StagePendingReview {
		t.Fatalf("expected workflow state to normalize back to %q", StagePendingReview)
	}
}
