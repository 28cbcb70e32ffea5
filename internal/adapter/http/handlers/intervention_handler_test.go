package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	response "depannel_dispatch/internal/adapter/http/dto/response"
	"depannel_dispatch/internal/adapter/http/handlers/mocks"
	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
	"depannel_dispatch/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInterventionRouter(t *testing.T, p entities.Principal) (*mocks.MockIInterventionUseCase, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIInterventionUseCase(ctrl)
	h := NewInterventionHandler(uc)

	r := gin.New()
	g := r.Group("/v1", asPrincipal(p))
	g.GET("/interventions", h.List)
	g.GET("/interventions/summary", h.Summary)
	g.GET("/interventions/:id", h.Get)
	g.GET("/interventions/:id/actions", h.Actions)
	g.GET("/interventions/:id/history", h.History)
	g.GET("/agents/available", h.AvailableAgents)
	for _, a := range lifecycle.AllActions {
		g.POST("/interventions/:id/"+string(a), h.Transition(a))
	}
	return uc, r
}

func TestInterventionHandler_List(t *testing.T) {
	t.Run("invalid group", func(t *testing.T) {
		_, r := newInterventionRouter(t, manager)
		w := doJSON(t, r, http.MethodGet, "/v1/interventions?group=weird", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("group and refresh forwarded", func(t *testing.T) {
		uc, r := newInterventionRouter(t, manager)
		uc.EXPECT().
			List(gomock.Any(), manager, usecase.ListFilter{Group: lifecycle.GroupPool, Refresh: true}).
			Return([]entities.Intervention{
				{ID: "1", Status: entities.StatusPending, Priority: entities.PriorityHigh},
				{ID: "2", Status: entities.StatusRefused, Priority: entities.PriorityLow},
			}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/interventions?group=pool&refresh=true", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got response.InterventionListResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Count != 2 || got.Items[1].Group != "pool" || got.Items[0].AssignedAgentID != nil {
			t.Fatalf("unexpected list %+v", got)
		}
	})

	t.Run("session expired", func(t *testing.T) {
		uc, r := newInterventionRouter(t, manager)
		uc.EXPECT().List(gomock.Any(), manager, gomock.Any()).Return(nil, lifecycle.ErrSessionExpired)

		w := doJSON(t, r, http.MethodGet, "/v1/interventions", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestInterventionHandler_Summary(t *testing.T) {
	uc, r := newInterventionRouter(t, agent7)
	uc.EXPECT().Summary(gomock.Any(), agent7).Return(usecase.SummaryView{
		Summary: lifecycle.Summary{Assigned: 1, Active: 2, Total: 3},
		Tabs:    &lifecycle.AgentTabs{ToAccept: 1, InProgress: 2},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/v1/interventions/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got response.SummaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Summary.Total != 3 || got.Tabs == nil || got.Tabs.InProgress != 2 {
		t.Fatalf("unexpected summary %+v", got)
	}
}

func TestInterventionHandler_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, r := newInterventionRouter(t, agent7)
		uc.EXPECT().Get(gomock.Any(), agent7, "99").Return(entities.Intervention{}, usecase.ErrInterventionNotFound)

		w := doJSON(t, r, http.MethodGet, "/v1/interventions/99", "")
		if w.Code != http.StatusNotFound || errorCode(t, w) != "INTERVENTION_NOT_FOUND" {
			t.Fatalf("expected 404, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, r := newInterventionRouter(t, agent7)
		uc.EXPECT().Get(gomock.Any(), agent7, "3").Return(entities.Intervention{
			ID: "3", Status: entities.StatusAccepted, SubStatus: entities.SubStatusEnRoute, AssignedAgentID: "7",
		}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/interventions/3", "")
		var got response.InterventionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.SubStatus != "en_route" || got.Group != "active" || got.AssignedAgentID == nil || *got.AssignedAgentID != "7" {
			t.Fatalf("unexpected intervention %+v", got)
		}
	})
}

func TestInterventionHandler_Actions(t *testing.T) {
	uc, r := newInterventionRouter(t, agent7)
	uc.EXPECT().AvailableActions(gomock.Any(), agent7, "5").
		Return([]lifecycle.Action{lifecycle.ActionAccept, lifecycle.ActionRefuse}, nil)

	w := doJSON(t, r, http.MethodGet, "/v1/interventions/5/actions", "")
	var got response.ActionsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.InterventionID != "5" || len(got.Actions) != 2 || got.Actions[1] != "refuse" {
		t.Fatalf("unexpected actions %+v", got)
	}
}

func TestInterventionHandler_History(t *testing.T) {
	t.Run("bad limit", func(t *testing.T) {
		_, r := newInterventionRouter(t, manager)
		w := doJSON(t, r, http.MethodGet, "/v1/interventions/5/history?limit=abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("limit capped", func(t *testing.T) {
		uc, r := newInterventionRouter(t, manager)
		uc.EXPECT().History(gomock.Any(), manager, "5", maxHistoryLimit).Return([]entities.TransitionRecord{
			{ID: "r1", InterventionID: "5", Action: string(lifecycle.ActionAssign), Outcome: entities.OutcomeConfirmed},
		}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/interventions/5/history?limit=5000", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInterventionHandler_Transition(t *testing.T) {
	t.Run("assign forwards agent id", func(t *testing.T) {
		uc, r := newInterventionRouter(t, manager)
		uc.EXPECT().
			Apply(gomock.Any(), manager, "5", gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Principal, _ string, cmd usecase.TransitionCommand) (entities.Intervention, error) {
				if cmd.Action != lifecycle.ActionAssign || cmd.AgentID != "7" {
					t.Fatalf("unexpected command %+v", cmd)
				}
				return entities.Intervention{ID: "5", Status: entities.StatusAssigned, AssignedAgentID: "7"}, nil
			})

		w := doJSON(t, r, http.MethodPost, "/v1/interventions/5/assign", `{"agent_id":7}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("empty body accepted", func(t *testing.T) {
		uc, r := newInterventionRouter(t, agent7)
		uc.EXPECT().
			Apply(gomock.Any(), agent7, "5", usecase.TransitionCommand{Action: lifecycle.ActionAccept}).
			Return(entities.Intervention{ID: "5", Status: entities.StatusAccepted, AssignedAgentID: "7"}, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/interventions/5/accept", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		_, r := newInterventionRouter(t, agent7)
		w := doJSON(t, r, http.MethodPost, "/v1/interventions/5/refuse", `{"reason":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		uc, r := newInterventionRouter(t, agent7)
		uc.EXPECT().Apply(gomock.Any(), agent7, "5", gomock.Any()).Return(entities.Intervention{}, lifecycle.ErrInvalidTransition)

		w := doJSON(t, r, http.MethodPost, "/v1/interventions/5/arrive", "")
		if w.Code != http.StatusConflict || errorCode(t, w) != "INVALID_TRANSITION" {
			t.Fatalf("expected 409, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("remote rejection keeps message", func(t *testing.T) {
		uc, r := newInterventionRouter(t, agent7)
		uc.EXPECT().Apply(gomock.Any(), agent7, "5", gomock.Any()).
			Return(entities.Intervention{}, &lifecycle.RemoteError{StatusCode: 422, Message: "Motif trop court"})

		w := doJSON(t, r, http.MethodPost, "/v1/interventions/5/refuse", `{"reason":"x"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Error.Message != "Motif trop court" {
			t.Fatalf("unexpected message %q", body.Error.Message)
		}
	})
}

func TestInterventionHandler_AvailableAgents(t *testing.T) {
	uc, r := newInterventionRouter(t, manager)
	uc.EXPECT().AvailableAgents(gomock.Any(), manager).Return([]entities.Agent{
		{ID: "7", Name: "Ana", Availability: entities.AgentAvailable},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/v1/agents/available", "")
	var got []response.AgentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ID != "7" {
		t.Fatalf("unexpected agents %+v", got)
	}
}
