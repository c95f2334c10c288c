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

	domainErrors "github.com/skobelin/paytrack/internal/domain/errors"
	"github.com/skobelin/paytrack/internal/domain/model"
	"github.com/skobelin/paytrack/internal/domain/repository"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// dbPool is the subset of pgxpool.Pool used by repositories. Narrowed to an
// interface so tests can substitute a pgxmock pool.
type dbPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (dbPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   dbPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type transactionRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
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
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Transactions() repository.TransactionRepository {
	return &transactionRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            role TEXT NOT NULL DEFAULT 'customer',
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            external_id TEXT UNIQUE NOT NULL,
            user_id BIGINT NOT NULL REFERENCES users(id),
            items JSONB NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS transactions (
            id BIGSERIAL PRIMARY KEY,
            external_id TEXT UNIQUE NOT NULL,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            amount DOUBLE PRECISION NOT NULL,
            payment_method TEXT NOT NULL,
            occurred_at TIMESTAMPTZ NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_order ON transactions(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, email string, role model.UserRole, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (name, email, role, password_hash) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, name, email, role, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, domainErrors.ErrEmailInUse
		}
		return nil, err
	}
	u.Name = name
	u.Email = email
	u.Role = role
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, role, password_hash, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, email, role, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, userID int64, externalID string, items []model.LineItem, totalAmount float64) (*model.Order, error) {
	encoded, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode line items: %w", err)
	}

	const query = `INSERT INTO orders (external_id, user_id, items, total_amount, status)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at, updated_at`
	order := model.Order{
		ExternalID:  externalID,
		UserID:      userID,
		Items:       items,
		TotalAmount: totalAmount,
		Status:      model.OrderStatusPending,
	}
	err = r.storage.pool.QueryRow(ctx, query, externalID, userID, encoded, totalAmount, model.OrderStatusPending).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, domainErrors.ErrDuplicateOrderID
		}
		return nil, err
	}
	return &order, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o     model.Order
		items []byte
	)
	if err := row.Scan(&o.ID, &o.ExternalID, &o.UserID, &items, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode line items: %w", err)
	}
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, external_id, user_id, items, total_amount, status, created_at, updated_at
                   FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByExternalID(ctx context.Context, externalID string) (*model.Order, error) {
	const query = `SELECT id, external_id, user_id, items, total_amount, status, created_at, updated_at
                   FROM orders WHERE external_id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	query := `SELECT id, external_id, user_id, items, total_amount, status, created_at, updated_at FROM orders`
	args := make([]any, 0, 2)
	conditions := ""
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = fmt.Sprintf(" WHERE user_id=$%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		if conditions == "" {
			conditions = fmt.Sprintf(" WHERE status=$%d", len(args))
		} else {
			conditions += fmt.Sprintf(" AND status=$%d", len(args))
		}
	}
	query += conditions + " ORDER BY created_at DESC"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2
                   RETURNING id, external_id, user_id, items, total_amount, status, created_at, updated_at`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, status, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

// --- TransactionRepository implementation ---

func (r *transactionRepository) Create(ctx context.Context, externalID string, orderID int64, amount float64, paymentMethod string, occurredAt time.Time) (*model.Transaction, error) {
	const query = `INSERT INTO transactions (external_id, order_id, amount, payment_method, occurred_at)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	tx := model.Transaction{
		ExternalID:    externalID,
		OrderID:       orderID,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		OccurredAt:    occurredAt,
	}
	err := r.storage.pool.QueryRow(ctx, query, externalID, orderID, amount, paymentMethod, occurredAt).
		Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, domainErrors.ErrDuplicateTransactionID
		}
		if isPgError(err, pgForeignKeyViolation) {
			return nil, domainErrors.ErrInvalidOrderRef
		}
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepository) List(ctx context.Context) ([]model.Transaction, error) {
	const query = `SELECT id, external_id, order_id, amount, payment_method, occurred_at, created_at
                   FROM transactions ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.ExternalID, &t.OrderID, &t.Amount, &t.PaymentMethod, &t.OccurredAt, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
