package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/polkiloo/payhook/internal/adapter/notifier"
	"github.com/polkiloo/payhook/internal/app"
	"github.com/polkiloo/payhook/internal/config"
	"github.com/polkiloo/payhook/internal/domain/repository"
	"github.com/polkiloo/payhook/internal/storage/postgres"
	"github.com/polkiloo/payhook/internal/test"
	"go.uber.org/fx"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:        ":0",
		DatabaseURI:       "postgres://stub",
		NotifierAddress:   "http://localhost",
		RelaySecret:       "secret",
		StoreTimeout:      time.Millisecond,
		SideEffectTimeout: time.Millisecond,
		ShutdownTimeout:   time.Millisecond,
		TransitionRetries: 1,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	orderRepo := test.NewOrderRepositoryStub()
	cartRepo := &test.CartRepositoryStub{}
	notifierStub := &test.NotifierStub{}

	var facade *app.WebhookFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.CartRepository(cartRepo)),
			fx.Replace(notifier.Client(notifierStub)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected webhook facade instance")
	}
}
