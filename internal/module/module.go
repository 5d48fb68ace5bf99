package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/registry"
)

// Module is a self-contained feature mounted under its own route group.
type Module interface {
	// Name is the unique identifier and the default mount path segment.
	Name() string

	// Register publishes the module's services before any module boots.
	Register(reg *registry.Registry) error

	// Boot mounts routes and starts background work once every module has registered.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown stops background work during graceful shutdown.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op lifecycle methods for embedding.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }
