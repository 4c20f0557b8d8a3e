package notifier

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/payhook/internal/config"
)

// Module wires the notification client. When no notifier address is
// configured the provided client is nil and notifications are skipped.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.NotifierAddress == "" {
		p.Logger.Warn("notifier address not configured, notifications disabled")
		return nil, nil
	}
	return NewHTTPClient(p.Config.NotifierAddress, p.Logger)
}
