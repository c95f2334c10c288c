package repository

import (
	"context"

	"github.com/skobelin/paytrack/internal/domain/model"
)

// OrderFilter narrows order listings. Nil fields are ignored.
type OrderFilter struct {
	UserID *int64
	Status *model.OrderStatus
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, userID int64, externalID string, items []model.LineItem, totalAmount float64) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByExternalID(ctx context.Context, externalID string) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
}
