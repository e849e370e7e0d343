package interfaces

// WorkflowState names a lifecycle stage in a workflow definition.
type WorkflowState string

func (s WorkflowState) String() string {
	return string(s)
}

// WorkflowDefinition describes the approval state machine a post moves through.
type WorkflowDefinition struct {
	EntityType   string
	InitialState WorkflowState
	States       []WorkflowStateDefinition
	Transitions  []WorkflowTransition
}

// WorkflowStateDefinition documents a workflow state.
type WorkflowStateDefinition struct {
	Name        WorkflowState
	Description string
	Terminal    bool
}

// WorkflowTransition declares an allowed transition between two states.
type WorkflowTransition struct {
	Name        string
	Description string
	From        WorkflowState
	To          WorkflowState
}
