package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/web/src/templates/pages"
)

// LandingHandler serves the public welcome page.
type LandingHandler struct {
	chrome *Chrome
	brand  string
}

// NewLandingHandler creates a new LandingHandler.
func NewLandingHandler(chrome *Chrome, brand string) *LandingHandler {
	return &LandingHandler{chrome: chrome, brand: brand}
}

// Get renders the landing page for everyone, logged in or not.
func (h *LandingHandler) Get(c echo.Context) error {
	return h.chrome.Render(c, "Home", pages.Landing(h.brand))
}
