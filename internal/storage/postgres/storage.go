package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/payhook/internal/domain/errors"
	"github.com/polkiloo/payhook/internal/domain/model"
	"github.com/polkiloo/payhook/internal/domain/repository"
)

// Pool abstracts the pgx connection pool so tests can substitute a mock.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool         Pool
	storeTimeout time.Duration
	logger       *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

// New creates storage with schema initialization. storeTimeout bounds
// the health check ping.
func New(ctx context.Context, dsn string, storeTimeout time.Duration, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, storeTimeout: storeTimeout, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            order_id TEXT UNIQUE NOT NULL,
            user_id TEXT NOT NULL,
            payment_status TEXT NOT NULL DEFAULT 'PENDING',
            transaction_id TEXT,
            status TEXT NOT NULL,
            timeline JSONB NOT NULL DEFAULT '[]',
            version BIGINT NOT NULL DEFAULT 1,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS carts (
            id SERIAL PRIMARY KEY,
            user_id TEXT UNIQUE NOT NULL,
            items JSONB NOT NULL DEFAULT '[]',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (order_id, user_id, payment_status, transaction_id, status, timeline)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, version, created_at, updated_at`

	timeline, err := json.Marshal(order.Timeline)
	if err != nil {
		return nil, fmt.Errorf("encode timeline: %w", err)
	}

	err = r.storage.pool.QueryRow(ctx, query,
		order.OrderID, order.UserID, order.PaymentStatus, order.TransactionID, order.Status, timeline,
	).Scan(&order.ID, &order.Version, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("order %s: %w", order.OrderID, domainErrors.ErrVersionConflict)
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	const query = `SELECT id, order_id, user_id, payment_status, transaction_id, status, timeline, version, created_at, updated_at
                   FROM orders WHERE order_id=$1`

	var (
		order    model.Order
		timeline []byte
	)
	err := r.storage.pool.QueryRow(ctx, query, orderID).Scan(
		&order.ID, &order.OrderID, &order.UserID, &order.PaymentStatus, &order.TransactionID,
		&order.Status, &timeline, &order.Version, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	if len(timeline) > 0 {
		if err := json.Unmarshal(timeline, &order.Timeline); err != nil {
			return nil, fmt.Errorf("decode timeline: %w", err)
		}
	}
	return &order, nil
}

// Update writes the whole aggregate in one statement guarded by the version
// the caller read. Zero affected rows means either the order vanished or a
// concurrent writer advanced the version first.
func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	const query = `UPDATE orders
                   SET payment_status=$1, transaction_id=$2, status=$3, timeline=$4, version=version+1, updated_at=NOW()
                   WHERE order_id=$5 AND version=$6`

	timeline, err := json.Marshal(order.Timeline)
	if err != nil {
		return fmt.Errorf("encode timeline: %w", err)
	}

	tag, err := r.storage.pool.Exec(ctx, query,
		order.PaymentStatus, order.TransactionID, order.Status, timeline, order.OrderID, order.Version,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		const existsQuery = `SELECT EXISTS(SELECT 1 FROM orders WHERE order_id=$1)`
		var exists bool
		if err := r.storage.pool.QueryRow(ctx, existsQuery, order.OrderID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domainErrors.ErrNotFound
		}
		return domainErrors.ErrVersionConflict
	}

	order.Version++
	return nil
}

// --- CartRepository implementation ---

func (r *cartRepository) GetByUser(ctx context.Context, userID string) (*model.Cart, error) {
	const query = `SELECT id, user_id, items, created_at, updated_at FROM carts WHERE user_id=$1`

	var (
		cart  model.Cart
		items []byte
	)
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&cart.ID, &cart.UserID, &items, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &cart.Items); err != nil {
			return nil, fmt.Errorf("decode cart items: %w", err)
		}
	}
	return &cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *model.Cart) error {
	const query = `INSERT INTO carts (user_id, items) VALUES ($1, $2)
                   ON CONFLICT (user_id) DO UPDATE SET items=EXCLUDED.items, updated_at=NOW()`

	items, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("encode cart items: %w", err)
	}

	_, err = r.storage.pool.Exec(ctx, query, cart.UserID, items)
	return err
}

// Clear empties the cart's items without deleting the row. A user without a
// cart is a no-op.
func (r *cartRepository) Clear(ctx context.Context, userID string) error {
	const query = `UPDATE carts SET items='[]'::jsonb, updated_at=NOW() WHERE user_id=$1`

	_, err := r.storage.pool.Exec(ctx, query, userID)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	timeout := s.storeTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
