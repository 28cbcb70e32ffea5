package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
	"depannel_dispatch/internal/usecase"
	"depannel_dispatch/pkg"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// AuthMiddleware resolves the bearer token into a principal. Browsers
// cannot set headers on websocket upgrades, so access_token is also read
// from the query string.
func AuthMiddleware(sessions usecase.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		p, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			appErr := mapAuthError(err)
			if appErr.HTTPStatus >= http.StatusInternalServerError {
				log.Printf("[auth][middleware] resolve failed path=%s err=%v", c.FullPath(), err)
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// RequireManager rejects non-manager principals.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := PrincipalFrom(c)
		if !p.IsManager() {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the principal set by AuthMiddleware.
func PrincipalFrom(c *gin.Context) (entities.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return entities.Principal{}, false
	}
	p, ok := v.(entities.Principal)
	return p, ok
}

func bearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return strings.TrimSpace(c.Query("access_token"))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing bearer token", http.StatusUnauthorized)
	case errors.Is(err, lifecycle.ErrSessionExpired):
		return pkg.NewDomainErrorSimple("SESSION_EXPIRED", "Session expired, please sign in again", http.StatusUnauthorized)
	default:
		return internalError(err)
	}
}
