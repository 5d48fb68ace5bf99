package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/domain"
	"github.com/nfrund/cbt/internal/middleware"
	"github.com/nfrund/cbt/internal/nav"
	"github.com/nfrund/cbt/internal/session"
)

// SessionEstablisher writes an authenticated session.
type SessionEstablisher interface {
	Establish(c echo.Context, a session.Authenticated) error
}

// SessionHandler accepts session hand-offs from the external login service.
type SessionHandler struct {
	store SessionEstablisher
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(store SessionEstablisher) *SessionHandler {
	return &SessionHandler{store: store}
}

// Post stores the posted token, username and role and continues to the
// dashboard. The token is not verified here.
func (h *SessionHandler) Post(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	var req SessionHandoffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed session hand-off")
	}
	if err := c.Validate(&req); err != nil {
		logger.Debug("Rejected session hand-off", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%v: token is required", domain.ErrInvalidSessionHandoff))
	}

	err := h.store.Establish(c, session.Authenticated{Token: req.Token, Username: req.Username, Role: req.Role})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSessionHandoff) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return fmt.Errorf("establish session: %w", err)
	}

	logger.Info("Session established", "username", req.Username, "role", req.Role)
	return c.Redirect(http.StatusSeeOther, string(nav.Dashboard))
}
