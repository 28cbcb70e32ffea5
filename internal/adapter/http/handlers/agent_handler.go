package handlers

import (
	"errors"
	"net/http"

	request "depannel_dispatch/internal/adapter/http/dto/request"
	response "depannel_dispatch/internal/adapter/http/dto/response"
	"depannel_dispatch/internal/usecase"
	"depannel_dispatch/pkg"

	"github.com/gin-gonic/gin"
)

// AgentHandler serves the agent directory.
type AgentHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewAgentHandler(uc usecase.ICatalogUseCase) *AgentHandler {
	return &AgentHandler{usecase: uc}
}

func (h *AgentHandler) List(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	agents, err := h.usecase.ListAgents(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapAgentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAgents(agents))
}

func (h *AgentHandler) Get(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	a, err := h.usecase.GetAgent(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeError(c, mapAgentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAgent(a))
}

func (h *AgentHandler) Create(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	var payload request.AgentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	a, err := h.usecase.CreateAgent(c.Request.Context(), p, payload.ToEntity(""), payload.Password)
	if err != nil {
		writeError(c, mapAgentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAgent(a))
}

func (h *AgentHandler) Update(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	var payload request.AgentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	a, err := h.usecase.UpdateAgent(c.Request.Context(), p, payload.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, mapAgentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAgent(a))
}

func mapAgentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAgent), errors.Is(err, usecase.ErrInvalidAgentID):
		return pkg.NewDomainErrorSimple("INVALID_AGENT", "Invalid agent", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAgentNotFound):
		return pkg.NewDomainErrorSimple("AGENT_NOT_FOUND", "Agent not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrManagerRequired):
		return errForbidden
	}
	if appErr := mapLifecycleError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
