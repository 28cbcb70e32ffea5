package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"depannel_dispatch/internal/adapter/persistence/repository"
	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
	"depannel_dispatch/internal/usecase/interfaces"
	mock_interfaces "depannel_dispatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	fixedNow = time.Date(2025, 10, 27, 10, 0, 0, 0, time.UTC)
	manager  = entities.Principal{UserID: "1", Role: entities.RoleManager, Token: "tok-m"}
	agent7   = entities.Principal{UserID: "7", Role: entities.RoleAgent, Token: "tok-7"}
	agent9   = entities.Principal{UserID: "9", Role: entities.RoleAgent, Token: "tok-9"}
)

type fixture struct {
	gateway  *mock_interfaces.MockIInterventionGateway
	sessions *mock_interfaces.MockISessionStore
	view     *repository.InterventionMemoryRepository
	uc       *InterventionUseCase

	mu      sync.Mutex
	records []entities.TransitionRecord
	events  []entities.Notification
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		gateway:  mock_interfaces.NewMockIInterventionGateway(ctrl),
		sessions: mock_interfaces.NewMockISessionStore(ctrl),
		view:     repository.NewInterventionMemoryRepository(),
	}
	journal := mock_interfaces.NewMockITransitionJournal(ctrl)
	journal.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec entities.TransitionRecord) error {
			f.mu.Lock()
			f.records = append(f.records, rec)
			f.mu.Unlock()
			return nil
		},
	).AnyTimes()
	sink := mock_interfaces.NewMockINotificationSink(ctrl)
	sink.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n entities.Notification) error {
			f.mu.Lock()
			f.events = append(f.events, n)
			f.mu.Unlock()
			return nil
		},
	).AnyTimes()

	f.uc = NewInterventionUseCase(InterventionDeps{
		Gateway:  f.gateway,
		View:     f.view,
		Journal:  journal,
		Sink:     sink,
		Sessions: f.sessions,
		Engine:   &lifecycle.Engine{ArrivalOffset: 30 * time.Minute, Now: func() time.Time { return fixedNow }},
	})
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func (f *fixture) seed(t *testing.T, iv entities.Intervention) {
	t.Helper()
	if err := f.view.Put(context.Background(), iv); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func (f *fixture) stored(t *testing.T, id string) entities.Intervention {
	t.Helper()
	iv, err := f.view.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("view get: %v", err)
	}
	return iv
}

func (f *fixture) lastRecord(t *testing.T) entities.TransitionRecord {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.records) == 0 {
		t.Fatalf("expected a journal record")
	}
	return f.records[len(f.records)-1]
}

func (f *fixture) audiences(typ entities.NotificationType) map[string]bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]bool{}
	for _, n := range f.events {
		if n.Type == typ {
			out[n.Audience] = true
		}
	}
	return out
}

func TestApply_AssignFromPending(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusPending, Priority: entities.PriorityMedium})

	f.gateway.EXPECT().ListAvailableAgents(gomock.Any(), manager).Return([]entities.Agent{
		{ID: "7", Availability: entities.AgentAvailable},
	}, nil)
	f.gateway.EXPECT().PerformAction(gomock.Any(), manager, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entities.Principal, req interfaces.ActionRequest) (entities.Intervention, error) {
			if req.InterventionID != "42" || req.Action != lifecycle.ActionAssign {
				t.Fatalf("unexpected request: %+v", req)
			}
			if req.Payload["agent_id"] != "7" {
				t.Fatalf("unexpected payload: %+v", req.Payload)
			}
			return entities.Intervention{ID: "42", Status: entities.StatusAssigned, AssignedAgentID: "7", Priority: entities.PriorityMedium}, nil
		},
	)

	got, err := f.uc.Apply(context.Background(), manager, " 42 ", TransitionCommand{Action: lifecycle.ActionAssign, AgentID: "7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.StatusAssigned || got.AssignedAgentID != "7" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if s := f.stored(t, "42"); s.Status != entities.StatusAssigned || s.AssignedAgentID != "7" {
		t.Fatalf("view not committed: %+v", s)
	}
	if rec := f.lastRecord(t); rec.Outcome != entities.OutcomeConfirmed || rec.ToStatus != entities.StatusAssigned || rec.ActorID != "1" {
		t.Fatalf("unexpected journal record: %+v", rec)
	}
	if !f.audiences(entities.NotificationPendingWork)[entities.AgentAudience("7")] {
		t.Fatalf("expected pending work for agent 7")
	}
	if !f.audiences(entities.NotificationChanged)[entities.AudienceManagers] {
		t.Fatalf("expected change notification for managers")
	}
}

func TestApply_AcceptSendsArrivalEstimate(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusAssigned, AssignedAgentID: "7"})

	f.gateway.EXPECT().PerformAction(gomock.Any(), agent7, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entities.Principal, req interfaces.ActionRequest) (entities.Intervention, error) {
			if req.Payload["estimated_arrival_time"] != "2025-10-27 10:30:00" {
				t.Fatalf("unexpected eta: %+v", req.Payload)
			}
			return entities.Intervention{}, nil
		},
	)
	f.gateway.EXPECT().GetIntervention(gomock.Any(), agent7, "42").Return(
		entities.Intervention{ID: "42", Status: entities.StatusAccepted, AssignedAgentID: "7"}, nil)

	got, err := f.uc.Apply(context.Background(), agent7, "42", TransitionCommand{Action: lifecycle.ActionAccept})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.StatusAccepted || got.SubStatus != entities.SubStatusNone {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestApply_ArriveKeepsPredictedSubStatus(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusAccepted, SubStatus: entities.SubStatusEnRoute, AssignedAgentID: "7"})

	f.gateway.EXPECT().PerformAction(gomock.Any(), agent7, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entities.Principal, req interfaces.ActionRequest) (entities.Intervention, error) {
			if len(req.Payload) != 0 {
				t.Fatalf("expected no payload, got %+v", req.Payload)
			}
			// the service does not report sub-statuses
			return entities.Intervention{ID: "42", Status: entities.StatusAccepted, AssignedAgentID: "7"}, nil
		},
	)

	got, err := f.uc.Apply(context.Background(), agent7, "42", TransitionCommand{Action: lifecycle.ActionArrive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SubStatus != entities.SubStatusArrived {
		t.Fatalf("expected arrived, got %+v", got)
	}
}

func TestApply_CompleteFromArrived(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusAccepted, SubStatus: entities.SubStatusArrived, AssignedAgentID: "7"})
	report := lifecycle.CompletionReport{WorkDescription: "battery swap", ResolutionNotes: "ok", PartsUsed: "battery"}

	f.gateway.EXPECT().PerformAction(gomock.Any(), agent7, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entities.Principal, req interfaces.ActionRequest) (entities.Intervention, error) {
			if req.Payload["work_description"] != "battery swap" || req.Payload["parts_used"] != "battery" {
				t.Fatalf("unexpected payload: %+v", req.Payload)
			}
			return entities.Intervention{ID: "42", Status: entities.StatusCompleted, SubStatus: entities.SubStatusArrived, AssignedAgentID: "7"}, nil
		},
	)

	got, err := f.uc.Apply(context.Background(), agent7, "42", TransitionCommand{Action: lifecycle.ActionComplete, Report: report})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.StatusCompleted || got.SubStatus != entities.SubStatusNone {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestApply_RefuseWithoutReason(t *testing.T) {
	f := newFixture(t)
	before := entities.Intervention{ID: "42", Status: entities.StatusAssigned, AssignedAgentID: "7"}
	f.seed(t, before)

	_, err := f.uc.Apply(context.Background(), agent7, "42", TransitionCommand{Action: lifecycle.ActionRefuse, Reason: "  "})
	if !errors.Is(err, lifecycle.ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed, got %v", err)
	}
	if s := f.stored(t, "42"); s != before {
		t.Fatalf("state must be unchanged, got %+v", s)
	}
	if rec := f.lastRecord(t); rec.Outcome != entities.OutcomeRefused {
		t.Fatalf("expected refused outcome, got %+v", rec)
	}
}

func TestApply_CloseTwice(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusCompleted, AssignedAgentID: "7"})
	closure := lifecycle.ClosureNotes{Reason: "resolved", ManagerNotes: "paid"}

	f.gateway.EXPECT().PerformAction(gomock.Any(), manager, gomock.Any()).Return(
		entities.Intervention{ID: "42", Status: entities.StatusClosed, AssignedAgentID: "7"}, nil).Times(1)

	got, err := f.uc.Apply(context.Background(), manager, "42", TransitionCommand{Action: lifecycle.ActionClose, Closure: closure})
	if err != nil || got.Status != entities.StatusClosed {
		t.Fatalf("unexpected first close: %+v err=%v", got, err)
	}

	_, err = f.uc.Apply(context.Background(), manager, "42", TransitionCommand{Action: lifecycle.ActionClose, Closure: closure})
	if !errors.Is(err, lifecycle.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if s := f.stored(t, "42"); s.Status != entities.StatusClosed {
		t.Fatalf("expected closed, got %+v", s)
	}
}

func TestApply_SameAgentAssignIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusAssigned, AssignedAgentID: "7"})

	got, err := f.uc.Apply(context.Background(), manager, "42", TransitionCommand{Action: lifecycle.ActionAssign, AgentID: "7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AssignedAgentID != "7" || got.Status != entities.StatusAssigned {
		t.Fatalf("unexpected result: %+v", got)
	}
	if rec := f.lastRecord(t); rec.Outcome != entities.OutcomeNoOp {
		t.Fatalf("expected noop outcome, got %+v", rec)
	}
}

func TestApply_GuardsFailFast(t *testing.T) {
	t.Run("unknown action", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusPending})
		_, err := f.uc.Apply(context.Background(), manager, "42", TransitionCommand{Action: "teleport"})
		if !errors.Is(err, lifecycle.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("wrong agent", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusAssigned, AssignedAgentID: "7"})
		_, err := f.uc.Apply(context.Background(), agent9, "42", TransitionCommand{Action: lifecycle.ActionAccept})
		if !errors.Is(err, lifecycle.ErrPreconditionFailed) {
			t.Fatalf("expected ErrPreconditionFailed, got %v", err)
		}
	})

	t.Run("assign from illegal state skips agent lookup", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusClosed})
		_, err := f.uc.Apply(context.Background(), manager, "42", TransitionCommand{Action: lifecycle.ActionAssign, AgentID: "7"})
		if !errors.Is(err, lifecycle.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("agent not available", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusPending})
		f.gateway.EXPECT().ListAvailableAgents(gomock.Any(), manager).Return([]entities.Agent{
			{ID: "9", Availability: entities.AgentAvailable},
		}, nil)
		_, err := f.uc.Apply(context.Background(), manager, "42", TransitionCommand{Action: lifecycle.ActionAssign, AgentID: "7"})
		if !errors.Is(err, lifecycle.ErrPreconditionFailed) {
			t.Fatalf("expected ErrPreconditionFailed, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Apply(context.Background(), manager, " ", TransitionCommand{Action: lifecycle.ActionClose})
		if !errors.Is(err, ErrInvalidInterventionID) {
			t.Fatalf("expected ErrInvalidInterventionID, got %v", err)
		}
	})
}

func TestApply_FailureLeavesViewUntouched(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		outcome entities.TransitionOutcome
		check   func(error) bool
	}{
		{"rejected", &lifecycle.RemoteError{StatusCode: 422, Message: "Agent indisponible"}, entities.OutcomeFailed,
			func(err error) bool {
				var re *lifecycle.RemoteError
				return errors.As(err, &re) && re.Message == "Agent indisponible"
			}},
		{"unreachable", lifecycle.ErrRemoteUnreachable, entities.OutcomeFailed,
			func(err error) bool { return errors.Is(err, lifecycle.ErrRemoteUnreachable) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			before := entities.Intervention{ID: "42", Status: entities.StatusAccepted, AssignedAgentID: "7"}
			f.seed(t, before)
			f.gateway.EXPECT().PerformAction(gomock.Any(), agent7, gomock.Any()).Return(entities.Intervention{}, tc.err)

			_, err := f.uc.Apply(context.Background(), agent7, "42", TransitionCommand{Action: lifecycle.ActionStartRoute})
			if !tc.check(err) {
				t.Fatalf("unexpected error: %v", err)
			}
			if s := f.stored(t, "42"); s != before {
				t.Fatalf("view must be unchanged, got %+v", s)
			}
			if rec := f.lastRecord(t); rec.Outcome != tc.outcome || rec.Error == "" {
				t.Fatalf("unexpected journal record: %+v", rec)
			}
			if len(f.audiences(entities.NotificationChanged)) != 0 {
				t.Fatalf("no notification expected on failure")
			}
		})
	}
}

func TestApply_SessionExpiredInvalidatesSession(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusAccepted, AssignedAgentID: "7"})
	f.gateway.EXPECT().PerformAction(gomock.Any(), agent7, gomock.Any()).Return(entities.Intervention{}, lifecycle.ErrSessionExpired)
	f.sessions.EXPECT().Invalidate(gomock.Any(), "tok-7").Return(nil)

	_, err := f.uc.Apply(context.Background(), agent7, "42", TransitionCommand{Action: lifecycle.ActionStartRoute})
	if !errors.Is(err, lifecycle.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestApply_RefetchFailureAdoptsPrediction(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusAccepted, AssignedAgentID: "7"})
	f.gateway.EXPECT().PerformAction(gomock.Any(), agent7, gomock.Any()).Return(entities.Intervention{}, nil)
	f.gateway.EXPECT().GetIntervention(gomock.Any(), agent7, "42").Return(entities.Intervention{}, lifecycle.ErrRemoteUnreachable)

	got, err := f.uc.Apply(context.Background(), agent7, "42", TransitionCommand{Action: lifecycle.ActionStartRoute})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SubStatus != entities.SubStatusEnRoute {
		t.Fatalf("expected en_route, got %+v", got)
	}
}

func TestApply_RequestSurvivesCallerCancellation(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusAccepted, AssignedAgentID: "7"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.gateway.EXPECT().PerformAction(gomock.Any(), agent7, gomock.Any()).DoAndReturn(
		func(rctx context.Context, _ entities.Principal, _ interfaces.ActionRequest) (entities.Intervention, error) {
			if rctx.Err() != nil {
				t.Fatalf("outbound request must not inherit caller cancellation")
			}
			if _, ok := rctx.Deadline(); !ok {
				t.Fatalf("outbound request must carry a deadline")
			}
			return entities.Intervention{ID: "42", Status: entities.StatusAccepted, AssignedAgentID: "7"}, nil
		},
	)

	if _, err := f.uc.Apply(ctx, agent7, "42", TransitionCommand{Action: lifecycle.ActionStartRoute}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApply_RejectsConcurrentMutation(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusAccepted, AssignedAgentID: "7"})
	f.uc.inflight.acquire("42")

	_, err := f.uc.Apply(context.Background(), agent7, "42", TransitionCommand{Action: lifecycle.ActionStartRoute})
	if !errors.Is(err, lifecycle.ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed, got %v", err)
	}

	f.uc.inflight.release("42")
	if f.uc.inflight.inFlight("42") {
		t.Fatalf("expected slot to be released")
	}
}

func TestApply_RefuseReturnsToPool(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusAssigned, AssignedAgentID: "7"})
	f.gateway.EXPECT().PerformAction(gomock.Any(), agent7, gomock.Any()).Return(
		entities.Intervention{ID: "42", Status: entities.StatusRefused, AssignedAgentID: "7", RefusalReason: "too far"}, nil)

	got, err := f.uc.Apply(context.Background(), agent7, "42", TransitionCommand{Action: lifecycle.ActionRefuse, Reason: "too far"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AssignedAgentID != "" || got.Status != entities.StatusRefused {
		t.Fatalf("refuse must clear the agent, got %+v", got)
	}
	if !f.audiences(entities.NotificationPendingWork)[entities.AudienceManagers] {
		t.Fatalf("expected pool notification for managers")
	}
	if !f.audiences(entities.NotificationChanged)[entities.AgentAudience("7")] {
		t.Fatalf("expected the prior agent to be notified")
	}
}

func TestGet_LoadsFromGatewayAndScopesAgents(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().GetIntervention(gomock.Any(), manager, "42").Return(entities.Intervention{}, &lifecycle.RemoteError{StatusCode: 404})
		_, err := f.uc.Get(context.Background(), manager, "42")
		if !errors.Is(err, ErrInterventionNotFound) {
			t.Fatalf("expected ErrInterventionNotFound, got %v", err)
		}
	})

	t.Run("loaded and cached", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().GetIntervention(gomock.Any(), manager, "42").Return(
			entities.Intervention{ID: "42", Status: entities.StatusCompleted, SubStatus: entities.SubStatusArrived}, nil).Times(1)
		got, err := f.uc.Get(context.Background(), manager, "42")
		if err != nil || got.SubStatus != entities.SubStatusNone {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
		if _, err := f.uc.Get(context.Background(), manager, "42"); err != nil {
			t.Fatalf("unexpected error on cached read: %v", err)
		}
	})

	t.Run("other agent", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusAssigned, AssignedAgentID: "7"})
		_, err := f.uc.Get(context.Background(), agent9, "42")
		if !errors.Is(err, ErrInterventionNotFound) {
			t.Fatalf("expected ErrInterventionNotFound, got %v", err)
		}
	})
}

func TestListAndSummary(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entities.Intervention{ID: "1", Status: entities.StatusPending, CreatedAt: fixedNow.Add(-3 * time.Hour)})
	f.seed(t, entities.Intervention{ID: "2", Status: entities.StatusRefused, CreatedAt: fixedNow.Add(-2 * time.Hour)})
	f.seed(t, entities.Intervention{ID: "3", Status: entities.StatusAssigned, AssignedAgentID: "7", CreatedAt: fixedNow.Add(-time.Hour)})
	f.seed(t, entities.Intervention{ID: "4", Status: entities.StatusAccepted, AssignedAgentID: "9", CreatedAt: fixedNow})

	pool, err := f.uc.List(context.Background(), manager, ListFilter{Group: lifecycle.GroupPool})
	if err != nil || len(pool) != 2 {
		t.Fatalf("expected pending and refused in the pool, got %+v err=%v", pool, err)
	}

	mine, err := f.uc.List(context.Background(), agent7, ListFilter{})
	if err != nil || len(mine) != 1 || mine[0].ID != "3" {
		t.Fatalf("agent must only see own records, got %+v err=%v", mine, err)
	}

	sum, err := f.uc.Summary(context.Background(), manager)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Summary.Pool != 2 || sum.Summary.Assigned != 1 || sum.Summary.Active != 1 || sum.Summary.Total != 4 || sum.Tabs != nil {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	agentSum, err := f.uc.Summary(context.Background(), agent7)
	if err != nil || agentSum.Tabs == nil || agentSum.Tabs.ToAccept != 1 || agentSum.Summary.Total != 1 {
		t.Fatalf("unexpected agent summary: %+v err=%v", agentSum, err)
	}
}

func TestAvailableActions(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entities.Intervention{ID: "42", Status: entities.StatusAssigned, AssignedAgentID: "7"})

	actions, err := f.uc.AvailableActions(context.Background(), agent7, "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[lifecycle.Action]bool{lifecycle.ActionAccept: true, lifecycle.ActionRefuse: true}
	if len(actions) != len(want) {
		t.Fatalf("unexpected actions: %v", actions)
	}
	for _, a := range actions {
		if !want[a] {
			t.Fatalf("unexpected action %s", a)
		}
	}
}
