package domain

import (
	"strings"

	"github.com/goliatone/go-postflow/pkg/interfaces"
)

// Stage represents the position of a post in the approval lifecycle.
type Stage = interfaces.WorkflowState

const (
	// StageDraft marks a post whose text is still being written
	StageDraft Stage = "draft"
	// StagePendingReview marks a post waiting for its first approval
	StagePendingReview Stage = "pending_review"
	// StageApproved marks a post in review that has received one approval
	StageApproved Stage = "approved"
	// StagePublished marks a post whose content is visible to readers
	StagePublished Stage = "published"
)

// NormalizeStage coerces arbitrary stage strings into a known representation.
// Blank input resolves to draft; unknown values are returned lowercased so
// callers can still report them.
func NormalizeStage(input string) Stage {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return StageDraft
	}
	normalized := strings.ToLower(strings.ReplaceAll(trimmed, "-", "_"))
	switch normalized {
	case "review", "pending":
		return StagePendingReview
	}
	return Stage(normalized)
}
