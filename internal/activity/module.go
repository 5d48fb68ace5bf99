package activity

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/module"
	"github.com/nfrund/cbt/internal/registry"
)

// SubscriberKey exposes the running subscriber to other modules and tests.
const SubscriberKey registry.Key[*Subscriber] = "activity.subscriber"

// Module runs the activity subscriber for the lifetime of the server.
type Module struct {
	module.BaseModule
	subscriber *Subscriber
}

// New creates the activity module.
func New() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "activity"
}

func (m *Module) Register(reg *registry.Registry) error {
	m.subscriber = NewSubscriber(registry.MustGet(reg, registry.SubscriberKey), 100)
	registry.Set(reg, SubscriberKey, m.subscriber)
	return nil
}

// Boot starts the subscriber. The module mounts no routes.
func (m *Module) Boot(ctx context.Context, _ *echo.Group, _ *registry.Registry) error {
	return m.subscriber.Start(ctx)
}

func (m *Module) Shutdown(ctx context.Context) error {
	m.subscriber.Stop()
	return nil
}
