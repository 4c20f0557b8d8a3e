package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/payhook/internal/config"
	"github.com/polkiloo/payhook/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(newPaymentUseCase),
	fx.Provide(newOrderUseCase),
)

type useCaseParams struct {
	fx.In

	Orders repository.OrderRepository
	Config *config.Config
}

func newPaymentUseCase(p useCaseParams) *PaymentUseCase {
	return NewPaymentUseCase(p.Orders, p.Config.TransitionRetries, p.Config.StoreTimeout)
}

func newOrderUseCase(p useCaseParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Config.StoreTimeout)
}
