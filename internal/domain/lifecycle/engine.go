// Package lifecycle is the single authoritative implementation of the
// intervention state machine.
//
// The engine is a pure decision function: given the last confirmed record,
// a command and the acting principal it either refuses the command or
// returns the predicted state and the payload to send. It never performs
// I/O and never mutates its input.
package lifecycle

import (
	"strings"
	"time"

	"depannel_dispatch/internal/domain/entities"
)

const (
	// DefaultArrivalOffset is added to "now" to build the estimated arrival
	// time sent on accept.
	DefaultArrivalOffset = 30 * time.Minute
	// ArrivalTimeLayout is YYYY-MM-DD HH:mm:ss.
	ArrivalTimeLayout = "2006-01-02 15:04:05"
)

type actor int

const (
	byManager actor = iota
	byAssignedAgent
)

// rule is one row group of the transition table.
type rule struct {
	from func(State) bool
	by   actor
}

func statusIn(statuses ...entities.InterventionStatus) func(State) bool {
	return func(s State) bool {
		for _, st := range statuses {
			if s.Status == st {
				return true
			}
		}
		return false
	}
}

var rules = map[Action]rule{
	// refused re-enters the assignment pool.
	ActionAssign:   {from: statusIn(entities.StatusPending, entities.StatusRefused), by: byManager},
	ActionAccept:   {from: statusIn(entities.StatusAssigned), by: byAssignedAgent},
	ActionReassign: {from: statusIn(entities.StatusAssigned, entities.StatusAccepted, entities.StatusInProgress), by: byManager},
	ActionStartRoute: {from: func(s State) bool {
		return s.Status == entities.StatusAccepted && s.SubStatus == entities.SubStatusNone
	}, by: byAssignedAgent},
	ActionArrive: {from: func(s State) bool {
		return s.Status == entities.StatusAccepted && s.SubStatus == entities.SubStatusEnRoute
	}, by: byAssignedAgent},
	ActionComplete: {from: func(s State) bool {
		return (s.Status == entities.StatusAccepted && s.SubStatus == entities.SubStatusArrived) ||
			s.Status == entities.StatusInProgress
	}, by: byAssignedAgent},
	ActionRefuse: {from: statusIn(entities.StatusAssigned), by: byAssignedAgent},
	ActionSetPriority: {from: func(s State) bool {
		return s.Status.Valid() && s.Status != entities.StatusClosed
	}, by: byManager},
	ActionClose: {from: statusIn(entities.StatusCompleted), by: byManager},
}

// Engine decides transitions. The zero value is usable and falls back to
// DefaultArrivalOffset and time.Now.
type Engine struct {
	ArrivalOffset time.Duration
	Now           func() time.Time
}

func NewEngine(arrivalOffset time.Duration) *Engine {
	return &Engine{ArrivalOffset: arrivalOffset, Now: time.Now}
}

func (e *Engine) now() time.Time {
	if e == nil || e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Engine) arrivalOffset() time.Duration {
	if e == nil || e.ArrivalOffset <= 0 {
		return DefaultArrivalOffset
	}
	return e.ArrivalOffset
}

// Decide validates cmd against the current record and returns the
// resulting transition. Legality is checked before any guard, so an action
// outside the table always yields ErrInvalidTransition.
func (e *Engine) Decide(iv entities.Intervention, cmd Command, by entities.Principal) (Transition, error) {
	from := StateOf(iv)
	tr := Transition{InterventionID: iv.ID, Action: cmd.Action, From: from, To: from}

	r, ok := rules[cmd.Action]
	if !ok {
		return Transition{}, invalid(cmd.Action, from)
	}

	if cmd.Action == ActionAssign && isSameAgentAssignment(from, cmd) {
		if !by.IsManager() {
			return Transition{}, precondition(cmd.Action, from, "manager role required")
		}
		tr.NoOp = true
		return tr, nil
	}

	if !r.from(from) {
		return Transition{}, invalid(cmd.Action, from)
	}
	if err := checkActor(r.by, cmd.Action, from, by); err != nil {
		return Transition{}, err
	}

	switch cmd.Action {
	case ActionAssign, ActionReassign:
		if cmd.Agent == nil || strings.TrimSpace(cmd.Agent.ID) == "" {
			return Transition{}, precondition(cmd.Action, from, "agent is required")
		}
		if cmd.Action == ActionReassign && cmd.Agent.ID == from.AgentID {
			tr.NoOp = true
			return tr, nil
		}
		if !cmd.Agent.IsAvailable() {
			return Transition{}, precondition(cmd.Action, from, "agent "+cmd.Agent.ID+" is not available")
		}
		tr.To.AgentID = cmd.Agent.ID
		if cmd.Action == ActionAssign {
			tr.To.Status = entities.StatusAssigned
		}
		// the new agent has not started travelling yet
		tr.To.SubStatus = entities.SubStatusNone
		tr.Payload = Payload{"agent_id": cmd.Agent.ID}

	case ActionAccept:
		tr.To.Status = entities.StatusAccepted
		tr.To.SubStatus = entities.SubStatusNone
		eta := e.now().Add(e.arrivalOffset())
		tr.Payload = Payload{"estimated_arrival_time": eta.Format(ArrivalTimeLayout)}

	case ActionStartRoute:
		tr.To.SubStatus = entities.SubStatusEnRoute

	case ActionArrive:
		tr.To.SubStatus = entities.SubStatusArrived

	case ActionComplete:
		tr.To.Status = entities.StatusCompleted
		tr.To.SubStatus = entities.SubStatusNone
		tr.Payload = Payload{
			"work_description": cmd.Report.WorkDescription,
			"resolution_notes": cmd.Report.ResolutionNotes,
			"parts_used":       cmd.Report.PartsUsed,
		}

	case ActionRefuse:
		reason := strings.TrimSpace(cmd.Reason)
		if reason == "" {
			return Transition{}, precondition(cmd.Action, from, "reason is required")
		}
		tr.To.Status = entities.StatusRefused
		tr.To.SubStatus = entities.SubStatusNone
		tr.To.AgentID = ""
		tr.Payload = Payload{"reason": reason}

	case ActionSetPriority:
		if !cmd.Priority.Valid() {
			return Transition{}, precondition(cmd.Action, from, "invalid priority "+string(cmd.Priority))
		}
		tr.To.Priority = cmd.Priority
		tr.Payload = Payload{"priority_level": string(cmd.Priority)}

	case ActionClose:
		tr.To.Status = entities.StatusClosed
		tr.To.SubStatus = entities.SubStatusNone
		tr.Payload = Payload{
			"closure_reason": cmd.Closure.Reason,
			"manager_notes":  cmd.Closure.ManagerNotes,
		}
	}

	return tr, nil
}

func isSameAgentAssignment(from State, cmd Command) bool {
	return from.Status == entities.StatusAssigned &&
		cmd.Agent != nil &&
		cmd.Agent.ID != "" &&
		cmd.Agent.ID == from.AgentID
}

func checkActor(required actor, action Action, from State, by entities.Principal) error {
	switch required {
	case byManager:
		if !by.IsManager() {
			return precondition(action, from, "manager role required")
		}
	case byAssignedAgent:
		if !by.IsAgent() || by.UserID == "" || by.UserID != from.AgentID {
			return precondition(action, from, "caller is not the assigned agent")
		}
	}
	return nil
}

// Check reports whether action is legal from iv's state for the principal.
// Argument guards are not evaluated; callers use it to fail fast before
// resolving arguments that need I/O.
func Check(iv entities.Intervention, action Action, by entities.Principal) error {
	from := StateOf(iv)
	r, ok := rules[action]
	if !ok || !r.from(from) {
		return invalid(action, from)
	}
	return checkActor(r.by, action, from, by)
}

// Available lists the actions the principal may request on iv right now.
// Argument guards (agent availability, refusal reason) are not evaluated.
func Available(iv entities.Intervention, by entities.Principal) []Action {
	from := StateOf(iv)
	var out []Action
	for _, a := range AllActions {
		r := rules[a]
		if !r.from(from) {
			continue
		}
		if checkActor(r.by, a, from, by) != nil {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Normalize enforces the record invariants on a record adopted from the
// backing service: no sub-status outside the active range, and no agent on
// pooled records.
func Normalize(iv entities.Intervention) entities.Intervention {
	if !iv.Status.Active() {
		iv.SubStatus = entities.SubStatusNone
	}
	if iv.Status == entities.StatusRefused || iv.Status == entities.StatusPending {
		iv.AssignedAgentID = ""
	}
	return iv
}

// Reconcile adopts the confirmed server record for tr. The server record
// wins on every field; the predicted sub-status is kept only when the
// server reports none and agrees on the status.
func Reconcile(tr Transition, confirmed entities.Intervention) entities.Intervention {
	if confirmed.SubStatus == entities.SubStatusNone &&
		confirmed.Status == tr.To.Status &&
		tr.To.Status.Active() {
		confirmed.SubStatus = tr.To.SubStatus
	}
	return Normalize(confirmed)
}

// Refresh merges a polled record over the local one. The backing service
// may not report sub-statuses; a local sub-status survives while the
// polled status matches.
func Refresh(local, polled entities.Intervention) entities.Intervention {
	if polled.SubStatus == entities.SubStatusNone &&
		polled.Status == local.Status &&
		local.Status.Active() {
		polled.SubStatus = local.SubStatus
	}
	return Normalize(polled)
}
