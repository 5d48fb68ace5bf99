package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/cbt/internal/app"
	"github.com/nfrund/cbt/internal/config"
	"github.com/nfrund/cbt/internal/exam"
	"github.com/nfrund/cbt/internal/handlers"
	"github.com/nfrund/cbt/internal/middleware"
	"github.com/nfrund/cbt/internal/module"
	"github.com/nfrund/cbt/internal/nav"
	"github.com/nfrund/cbt/internal/pubsub"
	"github.com/nfrund/cbt/internal/registry"
	"github.com/nfrund/cbt/internal/rendering"
	"github.com/nfrund/cbt/internal/session"
	"github.com/nfrund/cbt/internal/storage"
	"github.com/nfrund/cbt/web"
	"github.com/spf13/afero"
)

// Server holds the echo instance and the services wired into it.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Registry *registry.Registry
	Bus      *pubsub.WatermillBridge
	Store    *session.Store
	Chrome   *handlers.Chrome
	StaticFs afero.Fs

	modules []module.Module
	cancel  context.CancelFunc
}

// Option customizes a Server before routes are registered.
type Option func(*Server)

// WithStaticFs replaces the filesystem static assets and downloads are served from.
func WithStaticFs(fs afero.Fs) Option {
	return func(s *Server) { s.StaticFs = fs }
}

// New wires the services, middleware, routes and modules for cfg.
func New(cfg config.Provider, opts ...Option) (*Server, error) {
	bus := pubsub.NewWatermillBridge()
	renderer := rendering.NewUniversalRenderer()

	reg := registry.New(cfg)
	registry.Set[pubsub.Publisher](reg, registry.PublisherKey, bus)
	registry.Set[pubsub.Subscriber](reg, registry.SubscriberKey, bus)
	registry.Set[rendering.Renderer](reg, registry.RendererKey, renderer)

	// Gates and the store announce through whatever publisher is registered.
	publisher := registry.MustGet(reg, registry.PublisherKey)
	store := session.NewStore(publisher)
	registry.Set(reg, registry.SessionStoreKey, store)
	registry.Set(reg, registry.NavGateKey, nav.NewGate(store))
	registry.Set(reg, registry.ExamGateKey, exam.NewGate(publisher))

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	s := &Server{
		E:        e,
		Cfg:      cfg,
		Registry: reg,
		Bus:      bus,
		Store:    store,
		Chrome:   handlers.NewChrome(registry.MustGet(reg, registry.NavGateKey), cfg.GetAppName(), cfg.GetNavBreakpointPx()),
		StaticFs: storage.NewStaticFs(cfg.GetStaticDir(), web.StaticFS()),
	}
	for _, opt := range opts {
		opt(s)
	}

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger)
	e.Use(middleware.ClientHints)

	cookies := session.NewCookieStore(cfg.GetSessionSecret(), session.Options{
		MaxAge: cfg.GetSessionMaxAge(),
		Secure: cfg.GetCookieSecure(),
	})
	e.Use(echosession.Middleware(cookies))

	s.modules = app.NewModules(app.Dependencies{Chrome: s.Chrome})

	s.RegisterRoutes()
	if err := s.bootModules(); err != nil {
		return nil, err
	}
	return s, nil
}

// bootModules runs Register on every module, then Boot with a group named after it.
func (s *Server) bootModules() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	for _, mod := range s.modules {
		if err := mod.Register(s.Registry); err != nil {
			cancel()
			return fmt.Errorf("register module %s: %w", mod.Name(), err)
		}
	}
	for _, mod := range s.modules {
		if err := mod.Boot(ctx, s.E.Group("/"+mod.Name()), s.Registry); err != nil {
			cancel()
			return fmt.Errorf("boot module %s: %w", mod.Name(), err)
		}
		slog.Debug("Module booted", "module", mod.Name())
	}
	return nil
}

// Close shuts modules down in reverse order and closes the message bus.
func (s *Server) Close(ctx context.Context) error {
	for i := len(s.modules) - 1; i >= 0; i-- {
		if err := s.modules[i].Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", s.modules[i].Name(), "error", err)
		}
	}
	if s.cancel != nil {
		s.cancel()
	}
	return s.Bus.Close()
}
