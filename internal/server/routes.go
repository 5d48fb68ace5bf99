package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/handlers"
	"github.com/nfrund/cbt/internal/middleware"
	"github.com/nfrund/cbt/internal/nav"
	"github.com/nfrund/cbt/internal/registry"
	"github.com/nfrund/cbt/internal/storage"
	"github.com/nfrund/cbt/web/src/templates/partials"
	"github.com/spf13/afero"
)

// RegisterRoutes mounts every route that is not owned by a module.
func (s *Server) RegisterRoutes() {
	navigation := handlers.NewNavigationHandler(registry.MustGet(s.Registry, registry.NavGateKey), s.Cfg.GetExternalBaseURL() != "")
	landing := handlers.NewLandingHandler(s.Chrome, s.Cfg.GetAppName())
	external := handlers.NewExternalHandler(s.Chrome, s.Cfg.GetExternalBaseURL())
	sessions := handlers.NewSessionHandler(s.Store)
	downloads := storage.NewFileHandler(storage.NewAferoStore(s.StaticFs), storage.DefaultResources())
	rateLimiter := middleware.RateLimiter(middleware.DefaultRateLimit)

	s.E.GET(string(nav.Landing), landing.Get)
	for _, screen := range handlers.ExternalScreens {
		s.E.GET(string(screen.Route), external.Handler(screen))
	}

	s.E.GET(partials.PanelPath, navigation.Panel)
	s.E.POST(nav.LogoutPath, navigation.Logout)
	s.E.POST("/session", sessions.Post, rateLimiter)

	s.E.GET("/downloads/:name", downloads.Download)
	s.E.StaticFS("/static", afero.NewIOFS(s.StaticFs))

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
