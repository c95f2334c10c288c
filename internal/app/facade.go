package app

import (
	"context"
	"time"

	"github.com/skobelin/paytrack/internal/domain/model"
	"github.com/skobelin/paytrack/internal/usecase"
)

// CommerceFacade aggregates application use cases behind a single surface
// consumed by the HTTP layer.
type CommerceFacade struct {
	auth         *usecase.AuthUseCase
	orders       *usecase.OrderUseCase
	transactions *usecase.TransactionUseCase
}

func NewCommerceFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, transactions *usecase.TransactionUseCase) *CommerceFacade {
	return &CommerceFacade{auth: auth, orders: orders, transactions: transactions}
}

func (f *CommerceFacade) Register(ctx context.Context, name, email, password string, role model.UserRole) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password, role)
}

func (f *CommerceFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *CommerceFacade) ParseToken(token string) (*model.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *CommerceFacade) CreateOrder(ctx context.Context, userID int64, externalID string, items []model.LineItem, totalAmount float64) (*model.Order, error) {
	return f.orders.Create(ctx, userID, externalID, items, totalAmount)
}

func (f *CommerceFacade) Orders(ctx context.Context, caller model.Identity, status *model.OrderStatus) ([]model.Order, error) {
	return f.orders.List(ctx, caller, status)
}

func (f *CommerceFacade) UpdateOrderStatus(ctx context.Context, caller model.Identity, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, caller, orderID, status)
}

func (f *CommerceFacade) CreateTransaction(ctx context.Context, externalID string, orderID int64, amount float64, paymentMethod string, occurredAt time.Time) (*model.Transaction, error) {
	return f.transactions.Create(ctx, externalID, orderID, amount, paymentMethod, occurredAt)
}

func (f *CommerceFacade) Transactions(ctx context.Context) ([]model.Transaction, error) {
	return f.transactions.List(ctx)
}
