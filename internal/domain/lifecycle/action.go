package lifecycle

import (
	"fmt"
	"strings"

	"depannel_dispatch/internal/domain/entities"
)

// Action names a requested transition. The string value is also the action
// segment used when addressing the backing service.
type Action string

const (
	ActionAssign      Action = "assign"
	ActionAccept      Action = "accept"
	ActionReassign    Action = "reassign"
	ActionStartRoute  Action = "start"
	ActionArrive      Action = "arrive"
	ActionComplete    Action = "complete"
	ActionRefuse      Action = "refuse"
	ActionSetPriority Action = "priority"
	ActionClose       Action = "close"
)

var AllActions = []Action{
	ActionAssign,
	ActionAccept,
	ActionReassign,
	ActionStartRoute,
	ActionArrive,
	ActionComplete,
	ActionRefuse,
	ActionSetPriority,
	ActionClose,
}

// ParseAction accepts the canonical names plus the aliases used by the
// surfaces ("start_route", "set_priority").
func ParseAction(s string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "assign":
		return ActionAssign, true
	case "accept":
		return ActionAccept, true
	case "reassign":
		return ActionReassign, true
	case "start", "start_route", "start-route":
		return ActionStartRoute, true
	case "arrive":
		return ActionArrive, true
	case "complete":
		return ActionComplete, true
	case "refuse":
		return ActionRefuse, true
	case "priority", "set_priority", "set-priority":
		return ActionSetPriority, true
	case "close":
		return ActionClose, true
	}
	return "", false
}

// ManagerOnly reports whether the action is reserved to managers.
func (a Action) ManagerOnly() bool {
	switch a {
	case ActionAssign, ActionReassign, ActionSetPriority, ActionClose:
		return true
	}
	return false
}

// State is the part of an intervention the engine reasons about.
type State struct {
	Status    entities.InterventionStatus `json:"status"`
	SubStatus entities.SubStatus          `json:"sub_status,omitempty"`
	AgentID   string                      `json:"agent_id,omitempty"`
	Priority  entities.Priority           `json:"priority"`
}

func StateOf(iv entities.Intervention) State {
	return State{
		Status:    iv.Status,
		SubStatus: iv.SubStatus,
		AgentID:   iv.AssignedAgentID,
		Priority:  iv.Priority,
	}
}

// ApplyTo returns a copy of iv carrying s.
func (s State) ApplyTo(iv entities.Intervention) entities.Intervention {
	iv.Status = s.Status
	iv.SubStatus = s.SubStatus
	iv.AssignedAgentID = s.AgentID
	iv.Priority = s.Priority
	return iv
}

func (s State) String() string {
	if s.SubStatus == entities.SubStatusNone {
		return string(s.Status)
	}
	return fmt.Sprintf("%s/%s", s.Status, s.SubStatus)
}

// CompletionReport is the agent's closing report for complete.
type CompletionReport struct {
	WorkDescription string `json:"work_description"`
	ResolutionNotes string `json:"resolution_notes"`
	PartsUsed       string `json:"parts_used"`
}

// ClosureNotes is the manager's input for close.
type ClosureNotes struct {
	Reason       string `json:"closure_reason"`
	ManagerNotes string `json:"manager_notes"`
}

// Command is a requested action with its arguments. Only the fields
// relevant to the action are read.
type Command struct {
	Action   Action
	Agent    *entities.Agent
	Reason   string
	Report   CompletionReport
	Closure  ClosureNotes
	Priority entities.Priority
}

// Payload is the side payload sent to the backing service.
type Payload map[string]any

// Transition is the engine's decision for one command.
//
// To is speculative until the backing service confirms it. NoOp marks an
// idempotent request that must not reach the backing service.
type Transition struct {
	InterventionID string
	Action         Action
	From           State
	To             State
	Payload        Payload
	NoOp           bool
}
