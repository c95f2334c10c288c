package test

import (
	"context"
	"time"

	"github.com/skobelin/paytrack/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string, model.UserRole) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (*model.Identity, error)
}

// Register returns token and user for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string, role model.UserRole) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password, role)
	}
	if role == "" {
		role = model.RoleCustomer
	}
	return &model.User{ID: 1, Name: name, Email: email, Role: role}, "token", nil
}

// Authenticate returns token and user for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCustomer}, "token", nil
}

// ParseToken returns stored identity for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (*model.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &model.Identity{UserID: 1, Role: model.RoleCustomer}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn       func(context.Context, int64, string, []model.LineItem, float64) (*model.Order, error)
	OrdersFn       func(context.Context, model.Identity, *model.OrderStatus) ([]model.Order, error)
	UpdateStatusFn func(context.Context, model.Identity, int64, model.OrderStatus) (*model.Order, error)
}

// CreateOrder delegates to provided function or returns default order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, userID int64, externalID string, items []model.LineItem, totalAmount float64) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, externalID, items, totalAmount)
	}
	return &model.Order{ID: 1, ExternalID: externalID, UserID: userID, Items: items, TotalAmount: totalAmount, Status: model.OrderStatusPending}, nil
}

// Orders returns predefined orders for the caller.
func (s OrderFacadeStub) Orders(ctx context.Context, caller model.Identity, status *model.OrderStatus) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, caller, status)
	}
	return []model.Order{{ID: 1, ExternalID: "ORD-1", UserID: caller.UserID, Status: model.OrderStatusPending}}, nil
}

// UpdateOrderStatus delegates or echoes the updated order.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, caller model.Identity, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, caller, orderID, status)
	}
	return &model.Order{ID: orderID, UserID: caller.UserID, Status: status}, nil
}

// TransactionFacadeStub simulates settlement operations.
type TransactionFacadeStub struct {
	CreateFn func(context.Context, string, int64, float64, string, time.Time) (*model.Transaction, error)
	ListFn   func(context.Context) ([]model.Transaction, error)
}

// CreateTransaction delegates or returns a default transaction.
func (s TransactionFacadeStub) CreateTransaction(ctx context.Context, externalID string, orderID int64, amount float64, paymentMethod string, occurredAt time.Time) (*model.Transaction, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, externalID, orderID, amount, paymentMethod, occurredAt)
	}
	return &model.Transaction{ID: 1, ExternalID: externalID, OrderID: orderID, Amount: amount, PaymentMethod: paymentMethod, OccurredAt: occurredAt}, nil
}

// Transactions returns predefined transactions.
func (s TransactionFacadeStub) Transactions(ctx context.Context) ([]model.Transaction, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Transaction{{ID: 1, ExternalID: "TX-1"}}, nil
}

// CommerceFacadeStub aggregates facade dependencies for HTTP layer tests.
type CommerceFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	TransactionFacadeStub
}
