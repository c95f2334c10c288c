package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/skobelin/paytrack/internal/domain/errors"
	"github.com/skobelin/paytrack/internal/domain/model"
	"github.com/skobelin/paytrack/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Create places a new order in Pending status. The external identifier is
// checked for uniqueness up front; the storage constraint remains the final
// arbiter under concurrent creators.
func (u *OrderUseCase) Create(ctx context.Context, userID int64, externalID string, items []model.LineItem, totalAmount float64) (*model.Order, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" || len(items) == 0 {
		return nil, domainErrors.ErrInvalidOrderRef
	}
	if totalAmount < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	for _, item := range items {
		if item.Quantity < 1 || item.UnitPrice < 0 {
			return nil, domainErrors.ErrInvalidAmount
		}
	}

	if _, err := u.orders.GetByExternalID(ctx, externalID); err == nil {
		return nil, domainErrors.ErrDuplicateOrderID
	} else if err != domainErrors.ErrNotFound {
		return nil, err
	}

	return u.orders.Create(ctx, userID, externalID, items, totalAmount)
}

// List returns orders most-recently-created first. Non-admin callers only
// see their own orders; the optional status filter applies to everyone.
func (u *OrderUseCase) List(ctx context.Context, caller model.Identity, status *model.OrderStatus) ([]model.Order, error) {
	filter := repository.OrderFilter{Status: status}
	if !caller.IsAdmin() {
		userID := caller.UserID
		filter.UserID = &userID
	}
	return u.orders.List(ctx, filter)
}

// UpdateStatus overwrites order status on behalf of the owner or an admin.
// Any status may replace any other status; no transition table is enforced.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, caller model.Identity, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() && order.UserID != caller.UserID {
		return nil, domainErrors.ErrForbidden
	}

	return u.orders.UpdateStatus(ctx, orderID, status)
}
