package repository

import (
	"context"
	"time"

	"github.com/skobelin/paytrack/internal/domain/model"
)

// TransactionRepository describes persistence operations with transactions.
type TransactionRepository interface {
	Create(ctx context.Context, externalID string, orderID int64, amount float64, paymentMethod string, occurredAt time.Time) (*model.Transaction, error)
	List(ctx context.Context) ([]model.Transaction, error)
}
