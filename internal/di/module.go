package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/payhook/internal/adapter/notifier"
	"github.com/polkiloo/payhook/internal/app"
	"github.com/polkiloo/payhook/internal/config"
	"github.com/polkiloo/payhook/internal/logger"
	"github.com/polkiloo/payhook/internal/pkg/signature"
	"github.com/polkiloo/payhook/internal/server/http/handlers"
	"github.com/polkiloo/payhook/internal/server/http/router"
	"github.com/polkiloo/payhook/internal/sideeffect"
	"github.com/polkiloo/payhook/internal/storage/postgres"
	"github.com/polkiloo/payhook/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		signature.Module,
		postgres.Module,
		notifier.Module,
		usecase.Module,
		sideeffect.Module,
		fx.Provide(func(client notifier.Client) sideeffect.Notifier { return client }),
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.WebhookFacade) handlers.PayhookFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
