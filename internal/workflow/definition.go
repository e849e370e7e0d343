package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-postflow/internal/domain"
	"github.com/goliatone/go-postflow/pkg/interfaces"
)

// EntityTypePost identifies posts in workflow definitions.
const EntityTypePost = "post"

// Transition names shared by both post implementations.
const (
	TransitionRequestReview = "request_review"
	TransitionApprove       = "approve"
	TransitionReject        = "reject"
)

var (
	// ErrDefinitionEntityRequired indicates the workflow definition lacks an entity identifier.
	ErrDefinitionEntityRequired = errors.New("workflow: definition entity required")
	// ErrDefinitionStatesRequired indicates the workflow definition does not declare any states.
	ErrDefinitionStatesRequired = errors.New("workflow: definition requires at least one state")
	// ErrStateNameRequired indicates a workflow state is missing its name.
	ErrStateNameRequired = errors.New("workflow: state name required")
	// ErrDuplicateState indicates duplicate workflow state names were declared.
	ErrDuplicateState = errors.New("workflow: duplicate state")
	// ErrTransitionNameRequired indicates a transition lacks a name.
	ErrTransitionNameRequired = errors.New("workflow: transition name required")
	// ErrTransitionStateUnknown indicates a transition references a state that was not declared.
	ErrTransitionStateUnknown = errors.New("workflow: transition references unknown state")
	// ErrDuplicateTransition indicates the same transition name is declared multiple times for a state.
	ErrDuplicateTransition = errors.New("workflow: duplicate transition for state")
	// ErrInitialStateInvalid indicates the initial state is not declared.
	ErrInitialStateInvalid = errors.New("workflow: invalid initial state")
)

// PostDefinition returns the approval workflow every post follows. Operations
// not listed for a state are no-ops for the dynamic post and absent methods
// for the typestate post.
func PostDefinition() interfaces.WorkflowDefinition {
	return interfaces.WorkflowDefinition{
		EntityType:   EntityTypePost,
		InitialState: domain.StageDraft,
		States: []interfaces.WorkflowStateDefinition{
			{Name: domain.StageDraft, Description: "Text is being written"},
			{Name: domain.StagePendingReview, Description: "Waiting for the first approval"},
			{Name: domain.StageApproved, Description: "Approved once, waiting for the second approval"},
			{Name: domain.StagePublished, Description: "Content visible to readers", Terminal: true},
		},
		Transitions: []interfaces.WorkflowTransition{
			{Name: TransitionRequestReview, From: domain.StageDraft, To: domain.StagePendingReview},
			{Name: TransitionApprove, From: domain.StagePendingReview, To: domain.StageApproved},
			{Name: TransitionReject, From: domain.StagePendingReview, To: domain.StageDraft},
			{Name: TransitionApprove, From: domain.StageApproved, To: domain.StagePublished},
			{Name: TransitionReject, From: domain.StageApproved, To: domain.StageDraft},
		},
	}
}

// ValidateDefinition checks state and transition integrity.
func ValidateDefinition(def interfaces.WorkflowDefinition) error {
	entity := strings.TrimSpace(def.EntityType)
	if entity == "" {
		return ErrDefinitionEntityRequired
	}
	if len(def.States) == 0 {
		return fmt.Errorf("%w: %s", ErrDefinitionStatesRequired, entity)
	}

	states := make(map[domain.Stage]struct{}, len(def.States))
	for idx, state := range def.States {
		if strings.TrimSpace(string(state.Name)) == "" {
			return fmt.Errorf("%w at index %d", ErrStateNameRequired, idx)
		}
		name := domain.NormalizeStage(string(state.Name))
		if _, exists := states[name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateState, name)
		}
		states[name] = struct{}{}
	}

	if _, ok := states[domain.NormalizeStage(string(def.InitialState))]; !ok {
		return fmt.Errorf("%w: %s", ErrInitialStateInvalid, def.InitialState)
	}

	seen := make(map[string]struct{}, len(def.Transitions))
	for idx, transition := range def.Transitions {
		name := strings.TrimSpace(transition.Name)
		if name == "" {
			return fmt.Errorf("%w at index %d", ErrTransitionNameRequired, idx)
		}
		from := domain.NormalizeStage(string(transition.From))
		to := domain.NormalizeStage(string(transition.To))
		if _, ok := states[from]; !ok {
			return fmt.Errorf("%w: %s", ErrTransitionStateUnknown, from)
		}
		if _, ok := states[to]; !ok {
			return fmt.Errorf("%w: %s", ErrTransitionStateUnknown, to)
		}
		key := transitionKey(name, from)
		if _, exists := seen[key]; exists {
			return fmt.Errorf("%w: %s from %s", ErrDuplicateTransition, name, from)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// AvailableTransitions returns the transitions leaving stage, in declaration order.
func AvailableTransitions(def interfaces.WorkflowDefinition, stage domain.Stage) []interfaces.WorkflowTransition {
	from := domain.NormalizeStage(string(stage))
	var result []interfaces.WorkflowTransition
	for _, transition := range def.Transitions {
		if domain.NormalizeStage(string(transition.From)) == from {
			result = append(result, transition)
		}
	}
	return result
}

// Lookup finds the transition called name leaving stage.
func Lookup(def interfaces.WorkflowDefinition, name string, stage domain.Stage) (interfaces.WorkflowTransition, bool) {
	key := transitionKey(name, domain.NormalizeStage(string(stage)))
	for _, transition := range def.Transitions {
		if transitionKey(transition.Name, domain.NormalizeStage(string(transition.From))) == key {
			return transition, true
		}
	}
	return interfaces.WorkflowTransition{}, false
}

func transitionKey(name string, from domain.Stage) string {
	return strings.ToLower(strings.TrimSpace(name)) + "::" + string(from)
}
