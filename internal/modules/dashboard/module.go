package dashboard

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/handlers"
	"github.com/nfrund/cbt/internal/middleware"
	"github.com/nfrund/cbt/internal/module"
	"github.com/nfrund/cbt/internal/nav"
	"github.com/nfrund/cbt/internal/registry"
)

// Dependencies are the services the dashboard needs beyond the registry.
type Dependencies struct {
	Chrome *handlers.Chrome
}

// Module mounts the dashboard under /dashboard behind RequireSession.
type Module struct {
	module.BaseModule
	chrome  *handlers.Chrome
	handler *Handler
}

// New creates the dashboard module.
func New(deps Dependencies) *Module {
	return &Module{chrome: deps.Chrome}
}

func (m *Module) Name() string {
	return "dashboard"
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	store := registry.MustGet(reg, registry.SessionStoreKey)
	m.handler = NewHandler(m.chrome, registry.MustGet(reg, registry.ExamGateKey), registry.MustGet(reg, registry.RendererKey))

	// Anonymous visitors are sent to login instead of seeing a "Peserta" dashboard.
	group.Use(middleware.RequireSession(store, string(nav.Login)))
	group.GET("", m.handler.Get)
	group.GET(confirmPath, m.handler.Confirm)
	group.POST(decisionPath, m.handler.Decision)
	return nil
}
