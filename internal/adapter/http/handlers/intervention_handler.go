package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	request "depannel_dispatch/internal/adapter/http/dto/request"
	response "depannel_dispatch/internal/adapter/http/dto/response"
	"depannel_dispatch/internal/domain/lifecycle"
	"depannel_dispatch/internal/usecase"
	"depannel_dispatch/pkg"

	"github.com/gin-gonic/gin"
)

const maxHistoryLimit = 200

// InterventionHandler exposes the intervention lifecycle. Every route runs
// behind AuthMiddleware.
type InterventionHandler struct {
	usecase usecase.IInterventionUseCase
}

func NewInterventionHandler(uc usecase.IInterventionUseCase) *InterventionHandler {
	return &InterventionHandler{usecase: uc}
}

// List returns the interventions visible to the caller. Query: group
// (pool|assigned|active|completed|closed), refresh=true.
func (h *InterventionHandler) List(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	var f usecase.ListFilter
	if raw := c.Query("group"); raw != "" {
		g, ok := lifecycle.ParseGroup(raw)
		if !ok {
			writeError(c, errInvalidPayload.WithDetails("unknown group "+strconv.Quote(raw)))
			return
		}
		f.Group = g
	}
	f.Refresh, _ = strconv.ParseBool(c.Query("refresh"))

	list, err := h.usecase.List(c.Request.Context(), p, f)
	if err != nil {
		writeError(c, mapInterventionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInterventions(list))
}

func (h *InterventionHandler) Summary(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	view, err := h.usecase.Summary(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapInterventionError(err))
		return
	}
	c.JSON(http.StatusOK, response.SummaryResponse{Summary: view.Summary, Tabs: view.Tabs})
}

func (h *InterventionHandler) Get(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	iv, err := h.usecase.Get(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeError(c, mapInterventionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromIntervention(iv))
}

func (h *InterventionHandler) Actions(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	id := c.Param("id")
	actions, err := h.usecase.AvailableActions(c.Request.Context(), p, id)
	if err != nil {
		writeError(c, mapInterventionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromActions(id, actions))
}

func (h *InterventionHandler) History(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(c, errInvalidPayload.WithDetails("limit must be a positive integer"))
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	records, err := h.usecase.History(c.Request.Context(), p, c.Param("id"), limit)
	if err != nil {
		writeError(c, mapInterventionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransitionRecords(records))
}

// Transition returns the handler for one action route.
func (h *InterventionHandler) Transition(action lifecycle.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := PrincipalFrom(c)
		id := c.Param("id")

		var payload request.TransitionRequest
		if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
			writeError(c, errInvalidPayload)
			return
		}

		iv, err := h.usecase.Apply(c.Request.Context(), p, id, payload.ToCommand(action))
		if err != nil {
			log.Printf("[intervention][handler] %s failed id=%s user=%s err=%v", action, id, p.UserID, err)
			writeError(c, mapInterventionError(err))
			return
		}
		c.JSON(http.StatusOK, response.FromIntervention(iv))
	}
}

func (h *InterventionHandler) AvailableAgents(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	agents, err := h.usecase.AvailableAgents(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapInterventionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAgents(agents))
}

func mapInterventionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInterventionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInterventionNotFound):
		return pkg.NewDomainErrorSimple("INTERVENTION_NOT_FOUND", "Intervention not found", http.StatusNotFound)
	}
	if appErr := mapLifecycleError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
