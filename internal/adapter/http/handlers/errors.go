package handlers

import (
	"errors"
	"net/http"

	"depannel_dispatch/internal/domain/lifecycle"
	"depannel_dispatch/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "Manager role required", http.StatusForbidden)
)

// mapLifecycleError maps the transition error taxonomy. It returns nil for
// errors outside it.
func mapLifecycleError(err error) *pkg.AppError {
	var re *lifecycle.RemoteError
	switch {
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Action not allowed in the current state", err, http.StatusConflict)
	case errors.Is(err, lifecycle.ErrPreconditionFailed):
		return pkg.NewDomainError("PRECONDITION_FAILED", "Action precondition failed", err, http.StatusUnprocessableEntity)
	case errors.Is(err, lifecycle.ErrSessionExpired):
		return pkg.NewDomainErrorSimple("SESSION_EXPIRED", "Session expired, please sign in again", http.StatusUnauthorized)
	case errors.Is(err, lifecycle.ErrRemoteUnreachable):
		return pkg.NewDomainError("REMOTE_UNREACHABLE", "Backing service unreachable, retry later", err, http.StatusServiceUnavailable)
	case errors.As(err, &re):
		status := re.StatusCode
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
		msg := re.Message
		if msg == "" {
			msg = "Request rejected by the backing service"
		}
		return pkg.NewDomainErrorSimple("REMOTE_REJECTED", msg, status)
	}
	return nil
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
