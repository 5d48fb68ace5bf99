package app

import (
	"github.com/nfrund/cbt/internal/activity"
	"github.com/nfrund/cbt/internal/handlers"
	"github.com/nfrund/cbt/internal/module"
	"github.com/nfrund/cbt/internal/modules/dashboard"
)

// Dependencies holds what modules need from the server beyond the registry.
type Dependencies struct {
	Chrome *handlers.Chrome
}

// NewModules returns every enabled module in boot order.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		activity.New(),
		dashboard.New(dashboard.Dependencies{Chrome: deps.Chrome}),
	}
}
