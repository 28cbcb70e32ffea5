package lifecycle

import (
	"errors"
	"testing"
	"time"

	"depannel_dispatch/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

var (
	manager = entities.Principal{UserID: "m-1", Role: entities.RoleManager, Token: "tok-m"}
	agent7  = entities.Principal{UserID: "7", Role: entities.RoleAgent, Token: "tok-7"}
	agent8  = entities.Principal{UserID: "8", Role: entities.RoleAgent, Token: "tok-8"}

	available9 = &entities.Agent{ID: "9", Name: "Awa", Availability: entities.AgentAvailable}
	available7 = &entities.Agent{ID: "7", Name: "Issa", Availability: entities.AgentAvailable}
	busy9      = &entities.Agent{ID: "9", Name: "Awa", Availability: entities.AgentOnIntervention}

	fixedNow = time.Date(2025, 10, 27, 21, 10, 0, 0, time.UTC)
)

func testEngine() *Engine {
	return &Engine{ArrivalOffset: 30 * time.Minute, Now: func() time.Time { return fixedNow }}
}

func iv(status entities.InterventionStatus, sub entities.SubStatus, agentID string) entities.Intervention {
	return entities.Intervention{
		ID:              "42",
		Status:          status,
		SubStatus:       sub,
		AssignedAgentID: agentID,
		Priority:        entities.PriorityMedium,
		CreatedAt:       fixedNow.Add(-time.Hour),
	}
}

// inTable mirrors the transition table row by row.
func inTable(s State, a Action) bool {
	switch a {
	case ActionAssign:
		return s.Status == entities.StatusPending || s.Status == entities.StatusRefused
	case ActionAccept:
		return s.Status == entities.StatusAssigned
	case ActionReassign:
		return s.Status == entities.StatusAssigned || s.Status == entities.StatusAccepted || s.Status == entities.StatusInProgress
	case ActionStartRoute:
		return s.Status == entities.StatusAccepted && s.SubStatus == entities.SubStatusNone
	case ActionArrive:
		return s.Status == entities.StatusAccepted && s.SubStatus == entities.SubStatusEnRoute
	case ActionComplete:
		return (s.Status == entities.StatusAccepted && s.SubStatus == entities.SubStatusArrived) || s.Status == entities.StatusInProgress
	case ActionRefuse:
		return s.Status == entities.StatusAssigned
	case ActionSetPriority:
		return s.Status != entities.StatusClosed
	case ActionClose:
		return s.Status == entities.StatusCompleted
	}
	return false
}

func fullCommand(a Action) Command {
	return Command{
		Action:   a,
		Agent:    available9,
		Reason:   "client absent",
		Report:   CompletionReport{WorkDescription: "replaced fuse", ResolutionNotes: "ok", PartsUsed: "fuse 10A"},
		Closure:  ClosureNotes{Reason: "resolved", ManagerNotes: "checked"},
		Priority: entities.PriorityHigh,
	}
}

func allStates() []entities.Intervention {
	var out []entities.Intervention
	for _, st := range entities.AllStatuses {
		for _, sub := range []entities.SubStatus{entities.SubStatusNone, entities.SubStatusEnRoute, entities.SubStatusArrived} {
			for _, agentID := range []string{"", "7"} {
				out = append(out, iv(st, sub, agentID))
			}
		}
	}
	return out
}

func TestDecide_ActionsOutsideTableAreInvalid(t *testing.T) {
	e := testEngine()
	for _, current := range allStates() {
		for _, a := range AllActions {
			if inTable(StateOf(current), a) {
				continue
			}
			if a == ActionAssign && current.Status == entities.StatusAssigned && current.AssignedAgentID == "7" {
				// idempotent same-agent assignment, covered separately
				continue
			}
			for _, by := range []entities.Principal{manager, agent7} {
				before := current
				cmd := fullCommand(a)
				cmd.Agent = available7

				tr, err := e.Decide(current, cmd, by)

				require.ErrorIs(t, err, ErrInvalidTransition, "state=%s action=%s by=%s", StateOf(current), a, by.Role)
				require.False(t, errors.Is(err, ErrPreconditionFailed))
				require.Equal(t, Transition{}, tr)
				require.Equal(t, before, current)
			}
		}
	}
}

func TestDecide_TransitionsIntoTerminalLikeStatesClearSubStatus(t *testing.T) {
	e := testEngine()
	for _, current := range allStates() {
		for _, a := range []Action{ActionComplete, ActionClose, ActionRefuse} {
			if !inTable(StateOf(current), a) {
				continue
			}
			by := agent7
			if a.ManagerOnly() {
				by = manager
			}
			if current.AssignedAgentID != "7" && !a.ManagerOnly() {
				continue
			}

			tr, err := e.Decide(current, fullCommand(a), by)

			require.NoError(t, err, "state=%s action=%s", StateOf(current), a)
			require.Equal(t, entities.SubStatusNone, tr.To.SubStatus)
		}
	}
}

func TestDecide_RefuseAlwaysClearsAgent(t *testing.T) {
	e := testEngine()
	for _, sub := range []entities.SubStatus{entities.SubStatusNone, entities.SubStatusEnRoute} {
		tr, err := e.Decide(iv(entities.StatusAssigned, sub, "7"), fullCommand(ActionRefuse), agent7)

		require.NoError(t, err)
		require.Equal(t, entities.StatusRefused, tr.To.Status)
		require.Empty(t, tr.To.AgentID)
		require.Equal(t, Payload{"reason": "client absent"}, tr.Payload)
	}
}

func TestDecide_Scenarios(t *testing.T) {
	e := testEngine()

	t.Run("assign pending to available agent", func(t *testing.T) {
		cmd := Command{Action: ActionAssign, Agent: &entities.Agent{ID: "7", Availability: entities.AgentAvailable}}

		tr, err := e.Decide(iv(entities.StatusPending, "", ""), cmd, manager)

		require.NoError(t, err)
		require.Equal(t, entities.StatusAssigned, tr.To.Status)
		require.Equal(t, "7", tr.To.AgentID)
		require.Equal(t, Payload{"agent_id": "7"}, tr.Payload)
		require.False(t, tr.NoOp)
	})

	t.Run("accept sends arrival estimate", func(t *testing.T) {
		tr, err := e.Decide(iv(entities.StatusAssigned, "", "7"), Command{Action: ActionAccept}, agent7)

		require.NoError(t, err)
		require.Equal(t, entities.StatusAccepted, tr.To.Status)
		require.Equal(t, entities.SubStatusNone, tr.To.SubStatus)
		require.Equal(t, Payload{"estimated_arrival_time": "2025-10-27 21:40:00"}, tr.Payload)
	})

	t.Run("start route then arrive", func(t *testing.T) {
		tr, err := e.Decide(iv(entities.StatusAccepted, "", "7"), Command{Action: ActionStartRoute}, agent7)
		require.NoError(t, err)
		require.Equal(t, entities.SubStatusEnRoute, tr.To.SubStatus)
		require.Nil(t, tr.Payload)

		tr, err = e.Decide(iv(entities.StatusAccepted, entities.SubStatusEnRoute, "7"), Command{Action: ActionArrive}, agent7)
		require.NoError(t, err)
		require.Equal(t, entities.StatusAccepted, tr.To.Status)
		require.Equal(t, entities.SubStatusArrived, tr.To.SubStatus)
		require.Nil(t, tr.Payload)
	})

	t.Run("complete after arrival", func(t *testing.T) {
		tr, err := e.Decide(iv(entities.StatusAccepted, entities.SubStatusArrived, "7"), fullCommand(ActionComplete), agent7)

		require.NoError(t, err)
		require.Equal(t, entities.StatusCompleted, tr.To.Status)
		require.Equal(t, entities.SubStatusNone, tr.To.SubStatus)
		require.Equal(t, Payload{
			"work_description": "replaced fuse",
			"resolution_notes": "ok",
			"parts_used":       "fuse 10A",
		}, tr.Payload)
	})

	t.Run("refuse with empty reason", func(t *testing.T) {
		current := iv(entities.StatusAssigned, "", "7")
		for _, reason := range []string{"", "   "} {
			_, err := e.Decide(current, Command{Action: ActionRefuse, Reason: reason}, agent7)
			require.ErrorIs(t, err, ErrPreconditionFailed)
		}
		require.Equal(t, entities.StatusAssigned, current.Status)
		require.Equal(t, "7", current.AssignedAgentID)
	})

	t.Run("close twice", func(t *testing.T) {
		tr, err := e.Decide(iv(entities.StatusCompleted, "", "7"), fullCommand(ActionClose), manager)
		require.NoError(t, err)
		require.Equal(t, entities.StatusClosed, tr.To.Status)
		require.Equal(t, Payload{"closure_reason": "resolved", "manager_notes": "checked"}, tr.Payload)

		closed := tr.To.ApplyTo(iv(entities.StatusCompleted, "", "7"))
		_, err = e.Decide(closed, fullCommand(ActionClose), manager)
		require.ErrorIs(t, err, ErrInvalidTransition)
		require.Equal(t, entities.StatusClosed, closed.Status)
	})
}

func TestDecide_AssignSameAgentIsNoOp(t *testing.T) {
	e := testEngine()
	current := iv(entities.StatusAssigned, "", "7")

	tr, err := e.Decide(current, Command{Action: ActionAssign, Agent: &entities.Agent{ID: "7", Availability: entities.AgentOnIntervention}}, manager)

	require.NoError(t, err)
	require.True(t, tr.NoOp)
	require.Equal(t, tr.From, tr.To)
	require.Nil(t, tr.Payload)
}

func TestDecide_Guards(t *testing.T) {
	e := testEngine()

	cases := []struct {
		name    string
		current entities.Intervention
		cmd     Command
		by      entities.Principal
	}{
		{name: "assign busy agent", current: iv(entities.StatusPending, "", ""), cmd: Command{Action: ActionAssign, Agent: busy9}, by: manager},
		{name: "assign without agent", current: iv(entities.StatusPending, "", ""), cmd: Command{Action: ActionAssign}, by: manager},
		{name: "assign by agent", current: iv(entities.StatusPending, "", ""), cmd: Command{Action: ActionAssign, Agent: available9}, by: agent7},
		{name: "accept by other agent", current: iv(entities.StatusAssigned, "", "7"), cmd: Command{Action: ActionAccept}, by: agent8},
		{name: "accept by manager", current: iv(entities.StatusAssigned, "", "7"), cmd: Command{Action: ActionAccept}, by: manager},
		{name: "reassign busy agent", current: iv(entities.StatusAccepted, "", "7"), cmd: Command{Action: ActionReassign, Agent: busy9}, by: manager},
		{name: "priority by agent", current: iv(entities.StatusPending, "", ""), cmd: Command{Action: ActionSetPriority, Priority: entities.PriorityHigh}, by: agent7},
		{name: "invalid priority", current: iv(entities.StatusPending, "", ""), cmd: Command{Action: ActionSetPriority, Priority: "urgent"}, by: manager},
		{name: "close by agent", current: iv(entities.StatusCompleted, "", "7"), cmd: Command{Action: ActionClose}, by: agent7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Decide(tc.current, tc.cmd, tc.by)

			require.ErrorIs(t, err, ErrPreconditionFailed)
			var te *TransitionError
			require.ErrorAs(t, err, &te)
			require.Equal(t, tc.cmd.Action, te.Action)
			require.NotEmpty(t, te.Reason)
		})
	}
}

func TestDecide_Reassign(t *testing.T) {
	e := testEngine()

	tr, err := e.Decide(iv(entities.StatusAccepted, entities.SubStatusEnRoute, "7"), Command{Action: ActionReassign, Agent: available9}, manager)
	require.NoError(t, err)
	require.Equal(t, entities.StatusAccepted, tr.To.Status)
	require.Equal(t, "9", tr.To.AgentID)
	require.Equal(t, entities.SubStatusNone, tr.To.SubStatus)
	require.Equal(t, Payload{"agent_id": "9"}, tr.Payload)

	tr, err = e.Decide(iv(entities.StatusInProgress, "", "9"), Command{Action: ActionReassign, Agent: available9}, manager)
	require.NoError(t, err)
	require.True(t, tr.NoOp)
}

func TestDecide_AssignFromRefusedPool(t *testing.T) {
	tr, err := testEngine().Decide(iv(entities.StatusRefused, "", ""), Command{Action: ActionAssign, Agent: available9}, manager)

	require.NoError(t, err)
	require.Equal(t, entities.StatusAssigned, tr.To.Status)
	require.Equal(t, "9", tr.To.AgentID)
}

func TestDecide_UnknownAction(t *testing.T) {
	_, err := testEngine().Decide(iv(entities.StatusPending, "", ""), Command{Action: "teleport"}, manager)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestEngine_ZeroValueDefaults(t *testing.T) {
	var e Engine
	before := time.Now()

	tr, err := e.Decide(iv(entities.StatusAssigned, "", "7"), Command{Action: ActionAccept}, agent7)
	require.NoError(t, err)

	eta, err := time.ParseInLocation(ArrivalTimeLayout, tr.Payload["estimated_arrival_time"].(string), time.Local)
	require.NoError(t, err)
	require.WithinDuration(t, before.Add(DefaultArrivalOffset), eta, 2*time.Second)
}

func TestAvailable(t *testing.T) {
	require.Equal(t, []Action{ActionAccept, ActionRefuse}, Available(iv(entities.StatusAssigned, "", "7"), agent7))
	require.Empty(t, Available(iv(entities.StatusAssigned, "", "7"), agent8))
	require.Equal(t, []Action{ActionReassign, ActionSetPriority}, Available(iv(entities.StatusAssigned, "", "7"), manager))
	require.Equal(t, []Action{ActionSetPriority, ActionClose}, Available(iv(entities.StatusCompleted, "", "7"), manager))
	require.Empty(t, Available(iv(entities.StatusClosed, "", "7"), manager))
}

func TestNormalize(t *testing.T) {
	got := Normalize(iv(entities.StatusCompleted, entities.SubStatusArrived, "7"))
	require.Equal(t, entities.SubStatusNone, got.SubStatus)
	require.Equal(t, "7", got.AssignedAgentID)

	got = Normalize(iv(entities.StatusRefused, entities.SubStatusEnRoute, "7"))
	require.Equal(t, entities.SubStatusNone, got.SubStatus)
	require.Empty(t, got.AssignedAgentID)

	got = Normalize(iv(entities.StatusInProgress, entities.SubStatusArrived, "7"))
	require.Equal(t, entities.SubStatusArrived, got.SubStatus)
}

func TestReconcile(t *testing.T) {
	tr := Transition{To: State{Status: entities.StatusAccepted, SubStatus: entities.SubStatusEnRoute, AgentID: "7"}}

	got := Reconcile(tr, iv(entities.StatusAccepted, "", "7"))
	require.Equal(t, entities.SubStatusEnRoute, got.SubStatus)

	// server disagrees: its record wins entirely
	got = Reconcile(tr, iv(entities.StatusInProgress, "", "9"))
	require.Equal(t, entities.StatusInProgress, got.Status)
	require.Equal(t, entities.SubStatusNone, got.SubStatus)
	require.Equal(t, "9", got.AssignedAgentID)

	got = Reconcile(tr, iv(entities.StatusAccepted, entities.SubStatusArrived, "7"))
	require.Equal(t, entities.SubStatusArrived, got.SubStatus)
}

func TestRefresh(t *testing.T) {
	local := iv(entities.StatusAccepted, entities.SubStatusArrived, "7")

	got := Refresh(local, iv(entities.StatusAccepted, "", "7"))
	require.Equal(t, entities.SubStatusArrived, got.SubStatus)

	got = Refresh(local, iv(entities.StatusCompleted, "", "7"))
	require.Equal(t, entities.SubStatusNone, got.SubStatus)
}

func TestParseAction(t *testing.T) {
	for _, a := range AllActions {
		got, ok := ParseAction(string(a))
		require.True(t, ok)
		require.Equal(t, a, got)
	}
	got, ok := ParseAction(" Start_Route ")
	require.True(t, ok)
	require.Equal(t, ActionStartRoute, got)

	_, ok = ParseAction("delete")
	require.False(t, ok)
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check(iv(entities.StatusPending, "", ""), ActionAssign, manager))
	require.ErrorIs(t, Check(iv(entities.StatusClosed, "", "7"), ActionAssign, manager), ErrInvalidTransition)
	require.ErrorIs(t, Check(iv(entities.StatusPending, "", ""), ActionAssign, agent7), ErrPreconditionFailed)
	require.ErrorIs(t, Check(iv(entities.StatusPending, "", ""), "teleport", manager), ErrInvalidTransition)
}
