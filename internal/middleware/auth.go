package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/session"
)

// SessionContextKey is where RequireSession stores the authenticated session.
const SessionContextKey = "session"

// SessionLoader reads the current session for a request.
type SessionLoader interface {
	Load(c echo.Context) session.Session
}

// RequireSession creates a middleware that protects routes that need a token.
// Only the token's presence is checked; it is never verified here.
func RequireSession(store SessionLoader, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authed, ok := store.Load(c).(session.Authenticated)
			if !ok {
				return c.Redirect(http.StatusSeeOther, loginPath)
			}

			// Store the session in the context for downstream handlers.
			c.Set(SessionContextKey, authed)
			return next(c)
		}
	}
}

// SessionFromContext returns the session placed by RequireSession.
func SessionFromContext(c echo.Context) (session.Authenticated, bool) {
	authed, ok := c.Get(SessionContextKey).(session.Authenticated)
	return authed, ok
}
