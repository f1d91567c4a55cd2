package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/truthos/meeting-intel/internal/adapter/dto/common"
	"github.com/truthos/meeting-intel/internal/domain/entities"
	"github.com/truthos/meeting-intel/internal/usecase/auth"
)

const (
	// SessionContextKey is the echo context key for the resolved session
	SessionContextKey = "session"
	// TokenContextKey is the echo context key for the raw bearer token
	TokenContextKey = "token"
)

// RequireSession resolves the bearer token into a session and places it
// in the echo context. Requests without a valid session get a 401 with
// the upstream-style error envelope, which clients treat as a signal to
// clear local credentials and re-login.
func RequireSession(authService auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c.Request())
			if token == "" {
				return c.JSON(http.StatusUnauthorized,
					common.NewErrorEnvelope("UNAUTHENTICATED", "Missing authorization token"))
			}

			session, err := authService.Resolve(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized,
					common.NewErrorEnvelope("INVALID_TOKEN", "Invalid or expired token"))
			}

			c.Set(SessionContextKey, session)
			c.Set(TokenContextKey, token)
			return next(c)
		}
	}
}

// OptionalSession resolves a session when a valid token is present but
// lets the request through either way. Relay handlers use this: the
// upstream backend makes the real authorization decision, the session
// here only shapes what gets rendered.
func OptionalSession(authService auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := extractToken(c.Request()); token != "" {
				if session, err := authService.Resolve(c.Request().Context(), token); err == nil {
					c.Set(SessionContextKey, session)
					c.Set(TokenContextKey, token)
				}
			}
			return next(c)
		}
	}
}

// GetSession retrieves the session placed in the echo context, if any
func GetSession(c echo.Context) (*entities.Session, bool) {
	session, ok := c.Get(SessionContextKey).(*entities.Session)
	return session, ok && session != nil
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
