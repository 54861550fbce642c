package workflow

import "time"

type EventType string

const (
	EventWorkflowStarted   EventType = "workflow_started"
	EventWorkflowCompleted EventType = "workflow_completed"
	EventWorkflowFailed    EventType = "workflow_failed"
	EventPhaseStarted      EventType = "phase_started"
	EventPhaseCompleted    EventType = "phase_completed"
	EventPhaseFailed       EventType = "phase_failed"
	EventActionStarted     EventType = "action_started"
	EventActionCompleted   EventType = "action_completed"
	EventActionFailed      EventType = "action_failed"
)

// Event describes one lifecycle transition during Workflow.Run.
//
// PhaseIndex and ActionIndex give the position in declaration order, since
// titles and names need not be unique. PhaseIndex is set on phase and
// action events, ActionIndex on action events only.
type Event struct {
	Type        EventType
	RunID       string
	Workflow    string
	Phase       string
	Action      string
	PhaseIndex  int
	ActionIndex int
	Err         error
	Timestamp   time.Time
}

// Observer receives events synchronously on the goroutine running the
// workflow. It must not call back into the running Workflow.
type Observer func(Event)
