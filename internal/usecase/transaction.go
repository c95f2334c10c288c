package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/skobelin/paytrack/internal/bus"
	domainErrors "github.com/skobelin/paytrack/internal/domain/errors"
	"github.com/skobelin/paytrack/internal/domain/model"
	"github.com/skobelin/paytrack/internal/domain/repository"
)

// FeedPublisher broadcasts newly created transactions to live observers.
type FeedPublisher interface {
	Publish(event bus.TransactionEvent)
}

// TransactionUseCase encapsulates settlement record logic.
type TransactionUseCase struct {
	transactions repository.TransactionRepository
	orders       repository.OrderRepository
	feed         FeedPublisher
	logger       *slog.Logger
}

// NewTransactionUseCase constructs TransactionUseCase.
func NewTransactionUseCase(transactions repository.TransactionRepository, orders repository.OrderRepository, feed FeedPublisher, logger *slog.Logger) *TransactionUseCase {
	return &TransactionUseCase{transactions: transactions, orders: orders, feed: feed, logger: logger}
}

// Create persists a transaction referencing an existing order and publishes
// it to the live feed. The broadcast happens after the record is durable;
// delivery problems never fail the call.
func (u *TransactionUseCase) Create(ctx context.Context, externalID string, orderID int64, amount float64, paymentMethod string, occurredAt time.Time) (*model.Transaction, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" || paymentMethod == "" {
		return nil, domainErrors.ErrInvalidOrderRef
	}
	if amount < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	if _, err := u.orders.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidOrderRef
		}
		return nil, err
	}

	tx, err := u.transactions.Create(ctx, externalID, orderID, amount, paymentMethod, occurredAt)
	if err != nil {
		return nil, err
	}

	u.feed.Publish(bus.TransactionEvent{
		TransactionID: tx.ExternalID,
		OrderID:       tx.OrderID,
		Amount:        tx.Amount,
		PaymentMethod: tx.PaymentMethod,
		OccurredAt:    tx.OccurredAt,
	})
	u.logger.Info("transaction created",
		slog.String("transaction", tx.ExternalID),
		slog.Int64("order", tx.OrderID),
	)

	return tx, nil
}

// List returns all transactions most-recently-created first. Role
// enforcement happens at the access gate, not here.
func (u *TransactionUseCase) List(ctx context.Context) ([]model.Transaction, error) {
	return u.transactions.List(ctx)
}
