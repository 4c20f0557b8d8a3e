package sideeffect

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/payhook/internal/config"
	"github.com/polkiloo/payhook/internal/domain/repository"
)

// Module wires the side-effect dispatcher for fx graphs.
var Module = fx.Provide(newDispatcher)

type dispatcherParams struct {
	fx.In

	Notifier Notifier
	Carts    repository.CartRepository
	Config   *config.Config
	Logger   *slog.Logger
}

func newDispatcher(p dispatcherParams) *Dispatcher {
	return NewDispatcher(p.Notifier, p.Carts, p.Config.SideEffectTimeout, p.Logger)
}
