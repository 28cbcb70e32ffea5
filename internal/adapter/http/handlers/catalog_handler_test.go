package handlers

import (
	"net/http"
	"testing"

	"depannel_dispatch/internal/adapter/http/handlers/mocks"
	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(t *testing.T, p entities.Principal) (*mocks.MockICatalogUseCase, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	g := r.Group("/v1", asPrincipal(p))
	g.GET("/problem-types", h.List)
	g.POST("/problem-types", h.Create)
	g.PUT("/problem-types/:id", h.Update)
	g.DELETE("/problem-types/:id", h.Delete)
	return uc, r
}

func TestCatalogHandler(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		uc, r := newCatalogRouter(t, agent7)
		uc.EXPECT().ListProblemTypes(gomock.Any(), agent7).Return([]entities.ProblemType{{ID: "1", Name: "Panne"}}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/problem-types", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("create requires name", func(t *testing.T) {
		_, r := newCatalogRouter(t, manager)
		w := doJSON(t, r, http.MethodPost, "/v1/problem-types", `{"description":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("agent cannot create", func(t *testing.T) {
		uc, r := newCatalogRouter(t, agent7)
		uc.EXPECT().CreateProblemType(gomock.Any(), agent7, gomock.Any()).Return(entities.ProblemType{}, usecase.ErrManagerRequired)

		w := doJSON(t, r, http.MethodPost, "/v1/problem-types", `{"name":"Batterie"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("update passes path id", func(t *testing.T) {
		uc, r := newCatalogRouter(t, manager)
		uc.EXPECT().
			UpdateProblemType(gomock.Any(), manager, entities.ProblemType{ID: "4", Name: "Batterie", Priority: entities.PriorityHigh}).
			Return(entities.ProblemType{ID: "4", Name: "Batterie", Priority: entities.PriorityHigh}, nil)

		w := doJSON(t, r, http.MethodPut, "/v1/problem-types/4", `{"name":"Batterie","priority_level":"HIGH"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("delete invalid id", func(t *testing.T) {
		uc, r := newCatalogRouter(t, manager)
		uc.EXPECT().DeleteProblemType(gomock.Any(), manager, "x").Return(usecase.ErrInvalidProblemTypeID)

		w := doJSON(t, r, http.MethodDelete, "/v1/problem-types/x", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
