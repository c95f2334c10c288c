package handlers

import (
	"context"
	"time"

	"github.com/skobelin/paytrack/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string, role model.UserRole) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (*model.Identity, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, userID int64, externalID string, items []model.LineItem, totalAmount float64) (*model.Order, error)
	Orders(ctx context.Context, caller model.Identity, status *model.OrderStatus) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, caller model.Identity, orderID int64, status model.OrderStatus) (*model.Order, error)
}

// TransactionFacade encapsulates settlement operations exposed via HTTP.
type TransactionFacade interface {
	CreateTransaction(ctx context.Context, externalID string, orderID int64, amount float64, paymentMethod string, occurredAt time.Time) (*model.Transaction, error)
	Transactions(ctx context.Context) ([]model.Transaction, error)
}

// CommerceFacade aggregates the full set of operations used across handlers.
type CommerceFacade interface {
	AuthFacade
	OrderFacade
	TransactionFacade
}
