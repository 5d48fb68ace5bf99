package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/nav"
	"github.com/nfrund/cbt/internal/session"
	"github.com/nfrund/cbt/internal/shell"
	"github.com/nfrund/cbt/internal/view"
	"github.com/nfrund/cbt/web/src/templates/layouts"
	"github.com/nfrund/cbt/web/src/templates/partials"
	g "maragu.dev/gomponents"
)

// MenuParam carries the panel state for browsers that toggle it without htmx.
const MenuParam = "menu"

// Chrome builds the shared page frame: header, flash messages and layout.
// The session is read fresh on every call so the menu always reflects it.
type Chrome struct {
	gate       *nav.Gate
	brand      string
	breakpoint int
}

// NewChrome creates a Chrome.
func NewChrome(gate *nav.Gate, brand string, breakpointPx int) *Chrome {
	return &Chrome{gate: gate, brand: brand, breakpoint: breakpointPx}
}

// Header computes the header for the current request.
func (ch *Chrome) Header(c echo.Context) (session.Session, partials.HeaderData) {
	s, actions := ch.gate.Current(c)
	width := shell.ViewportWidth(c.Request().Header)
	return s, partials.HeaderData{
		Brand:       ch.brand,
		CurrentPath: c.Request().URL.Path,
		Actions:     actions,
		Mode:        shell.ModeFor(width, ch.breakpoint),
		Panel:       shell.ParseState(c.QueryParam(MenuParam)),
	}
}

// Page wraps content in the base layout.
func (ch *Chrome) Page(c echo.Context, title string, content g.Node) g.Node {
	_, header := ch.Header(c)
	return layouts.Base(title, header, view.GetFlashData(c), content)
}

// Render writes a full page with status 200.
func (ch *Chrome) Render(c echo.Context, title string, content g.Node) error {
	return c.Render(http.StatusOK, "", ch.Page(c, title, content))
}
