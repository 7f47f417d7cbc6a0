package middleware

import (
	"strings"

	"scout/internal/delivery/http/response"
	"scout/internal/domain/service"
	"scout/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContextKeyUID is where Authenticate stores the session identity for
// handlers.
const ContextKeyUID = "uid"

// ContextKeySession is where Authenticate stores the resolved session
// context.
const ContextKeySession = "session"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	registry *usecase.SessionRegistry
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, registry *usecase.SessionRegistry) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, registry: registry}
}

// Authenticate validates the bearer token and resolves the session context
// for the identity it carries. A valid token whose session was swept (for
// example after a restart with resume disabled) is rejected, forcing an
// explicit re-login.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		uid, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		session, ok := m.registry.Resolve(c.Request().Context(), uid)
		if !ok {
			return response.Unauthorized(c, "SESSION_EXPIRED", "Session is no longer active")
		}

		// Set session info on the context for handlers to use
		c.Set(ContextKeyUID, uid)
		c.Set(ContextKeySession, session)

		return next(c)
	}
}

// SessionFromContext returns the session context stored by Authenticate.
func SessionFromContext(c echo.Context) (*usecase.SessionContext, bool) {
	session, ok := c.Get(ContextKeySession).(*usecase.SessionContext)

	return session, ok
}
