package handlers

import (
	"errors"
	"log"
	"net/http"

	request "depannel_dispatch/internal/adapter/http/dto/request"
	response "depannel_dispatch/internal/adapter/http/dto/response"
	"depannel_dispatch/internal/usecase"
	"depannel_dispatch/pkg"

	"github.com/gin-gonic/gin"
)

// SessionHandler proxies sign-in and sign-out to the backing service.
type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

func (h *SessionHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	p, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPrincipal(p))
}

func (h *SessionHandler) Logout(c *gin.Context) {
	p, _ := PrincipalFrom(c)
	if err := h.usecase.Logout(c.Request.Context(), p); err != nil {
		log.Printf("[session][handler] logout failed user=%s err=%v", p.UserID, err)
		writeError(c, mapSessionError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing bearer token", http.StatusUnauthorized)
	}
	if appErr := mapLifecycleError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
