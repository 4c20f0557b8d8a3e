package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/payhook/internal/domain/errors"
	"github.com/polkiloo/payhook/internal/domain/model"
)

// OrderRepositoryStub keeps orders in memory and records interactions.
type OrderRepositoryStub struct {
	CreateFn func(context.Context, *model.Order) (*model.Order, error)
	GetFn    func(context.Context, string) (*model.Order, error)
	UpdateFn func(context.Context, *model.Order) error

	mu      sync.Mutex
	orders  map[string]*model.Order
	updates int
}

// NewOrderRepositoryStub builds an empty in-memory repository.
func NewOrderRepositoryStub(seed ...*model.Order) *OrderRepositoryStub {
	stub := &OrderRepositoryStub{orders: make(map[string]*model.Order)}
	for _, order := range seed {
		copied := *order
		stub.orders[order.OrderID] = &copied
	}
	return stub
}

// Create stores the order or delegates to CreateFn.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.orders == nil {
		s.orders = make(map[string]*model.Order)
	}
	copied := *order
	if copied.Version == 0 {
		copied.Version = 1
	}
	s.orders[order.OrderID] = &copied
	return order, nil
}

// GetByOrderID returns a copy of the stored aggregate.
func (s *OrderRepositoryStub) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *stored
	copied.Timeline = append([]model.TimelineEntry(nil), stored.Timeline...)
	return &copied, nil
}

// Update applies the version check the real store performs.
func (s *OrderRepositoryStub) Update(ctx context.Context, order *model.Order) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.orders[order.OrderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if stored.Version != order.Version {
		return domainErrors.ErrVersionConflict
	}
	copied := *order
	copied.Timeline = append([]model.TimelineEntry(nil), order.Timeline...)
	copied.Version++
	s.orders[order.OrderID] = &copied
	order.Version++
	s.updates++
	return nil
}

// Updates returns how many writes succeeded.
func (s *OrderRepositoryStub) Updates() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updates
}

// CartRepositoryStub records cart interactions.
type CartRepositoryStub struct {
	GetFn   func(context.Context, string) (*model.Cart, error)
	SaveFn  func(context.Context, *model.Cart) error
	ClearFn func(context.Context, string) error

	mu      sync.Mutex
	cleared []string
}

// GetByUser delegates or reports absence.
func (s *CartRepositoryStub) GetByUser(ctx context.Context, userID string) (*model.Cart, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID)
	}
	return nil, domainErrors.ErrNotFound
}

// Save delegates to the configured function.
func (s *CartRepositoryStub) Save(ctx context.Context, cart *model.Cart) error {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, cart)
	}
	return nil
}

// Clear records the cleared user.
func (s *CartRepositoryStub) Clear(ctx context.Context, userID string) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleared = append(s.cleared, userID)
	return nil
}

// Cleared returns the users whose carts were cleared.
func (s *CartRepositoryStub) Cleared() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.cleared...)
}

// NotifierStub captures notifications.
type NotifierStub struct {
	NotifyFn func(context.Context, model.Notification) error

	mu   sync.Mutex
	sent []model.Notification
}

// Notify records the notification or delegates.
func (s *NotifierStub) Notify(ctx context.Context, notification model.Notification) error {
	if s.NotifyFn != nil {
		return s.NotifyFn(ctx, notification)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, notification)
	return nil
}

// Sent returns delivered notifications.
func (s *NotifierStub) Sent() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Notification(nil), s.sent...)
}
