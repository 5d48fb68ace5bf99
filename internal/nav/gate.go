package nav

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/session"
)

// Kind distinguishes plain navigation from the logout operation.
type Kind int

const (
	KindLink Kind = iota
	KindLogout
)

// Variant is the visual emphasis of an action button.
type Variant string

const (
	VariantPlain    Variant = "plain"
	VariantOutlined Variant = "outlined"
	VariantDanger   Variant = "danger"
)

// Action is one entry of the navigation menu.
type Action struct {
	Label   string
	Route   Route
	Kind    Kind
	Variant Variant
}

// Href is where the action's control points: the route for links, the logout
// endpoint for logout.
func (a Action) Href() string {
	if a.Kind == KindLogout {
		return LogoutPath
	}
	return string(a.Route)
}

var (
	anonymousActions = []Action{
		{Label: "Home", Route: Landing, Kind: KindLink, Variant: VariantPlain},
		{Label: "Login", Route: Login, Kind: KindLink, Variant: VariantPlain},
		{Label: "Register", Route: Register, Kind: KindLink, Variant: VariantOutlined},
	}
	authenticatedActions = []Action{
		{Label: "Dashboard", Route: Dashboard, Kind: KindLink, Variant: VariantPlain},
		{Label: "Profile", Route: Profile, Kind: KindLink, Variant: VariantPlain},
		{Label: "Logout", Route: Login, Kind: KindLogout, Variant: VariantDanger},
	}
)

// AnonymousActions returns the menu shown to visitors without a token.
func AnonymousActions() []Action {
	return append([]Action(nil), anonymousActions...)
}

// AuthenticatedActions returns the menu shown to visitors holding a token.
func AuthenticatedActions() []Action {
	return append([]Action(nil), authenticatedActions...)
}

// SessionStore is the part of the session store the gate needs.
type SessionStore interface {
	Load(c echo.Context) session.Session
	Clear(c echo.Context) (session.Session, error)
}

// Gate decides which menu is visible and performs logout.
type Gate struct {
	store SessionStore
}

// NewGate creates a Gate reading from store.
func NewGate(store SessionStore) *Gate {
	return &Gate{store: store}
}

// Actions returns exactly one of the two fixed menus for s.
func (g *Gate) Actions(s session.Session) []Action {
	return session.Match(s, AnonymousActions, func(session.Authenticated) []Action {
		return AuthenticatedActions()
	})
}

// Current loads the session for the request and returns it with its menu.
func (g *Gate) Current(c echo.Context) (session.Session, []Action) {
	s := g.store.Load(c)
	return s, g.Actions(s)
}

// Logout clears the session and returns the route to navigate to. It cannot
// fail: store errors are logged and the caller still navigates to login.
func (g *Gate) Logout(c echo.Context) Route {
	prior, err := g.store.Clear(c)
	if err != nil {
		slog.Warn("session clear reported an error during logout", "error", err)
	}
	slog.Debug("user logged out", "was_authenticated", session.IsAuthenticated(prior))
	return Login
}
