package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/nav"
	"github.com/nfrund/cbt/internal/shell"
	"github.com/nfrund/cbt/internal/view"
	"github.com/nfrund/cbt/web/src/templates/partials"
)

// LoggedOutMessage is flashed on the page shown after logout.
const LoggedOutMessage = "Anda telah keluar."

// NavigationHandler serves the narrow-panel fragment and logout.
type NavigationHandler struct {
	gate          *nav.Gate
	externalLogin bool
}

// NewNavigationHandler creates a new NavigationHandler. externalLogin is set
// when /login redirects to another service, which cannot show our flash.
func NewNavigationHandler(gate *nav.Gate, externalLogin bool) *NavigationHandler {
	return &NavigationHandler{gate: gate, externalLogin: externalLogin}
}

// Panel applies one event to the reported panel state and returns the
// re-rendered fragment. The menu inside is recomputed from the session.
func (h *NavigationHandler) Panel(c echo.Context) error {
	state := shell.ParseState(c.QueryParam("state"))
	event := shell.ParseEvent(c.QueryParam("event"))

	from := c.QueryParam("from")
	if !nav.IsRoute(from) {
		from = string(nav.Landing)
	}

	_, actions := h.gate.Current(c)
	return c.Render(http.StatusOK, "", partials.NarrowNav(partials.NarrowNavData{
		Actions:     actions,
		State:       shell.Next(state, event),
		CurrentPath: from,
	}))
}

// Logout clears the session and navigates to the login screen.
func (h *NavigationHandler) Logout(c echo.Context) error {
	target := h.gate.Logout(c)
	if !h.externalLogin {
		view.SetFlashSuccess(c, LoggedOutMessage)
	}
	return Navigate(c, string(target))
}
