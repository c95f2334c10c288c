package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/skobelin/paytrack/internal/domain/model"
	"github.com/skobelin/paytrack/internal/server/http/dto"
	"github.com/skobelin/paytrack/internal/server/http/middleware"
)

// CurrentIdentity extracts the authenticated caller from context.
func CurrentIdentity(c *gin.Context) model.Identity {
	var identity model.Identity
	if val, ok := c.Get(middleware.UserIDContextKey); ok {
		identity.UserID, _ = val.(int64)
	}
	if val, ok := c.Get(middleware.UserRoleContextKey); ok {
		identity.Role, _ = val.(model.UserRole)
	}
	return identity
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.LineItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.LineItemPayload{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return dto.OrderResponse{
		ID:          order.ID,
		OrderID:     order.ExternalID,
		UserID:      order.UserID,
		Items:       items,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

func toTransactionResponse(tx model.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            tx.ID,
		TransactionID: tx.ExternalID,
		OrderID:       tx.OrderID,
		Amount:        tx.Amount,
		PaymentMethod: tx.PaymentMethod,
		Timestamp:     tx.OccurredAt,
		CreatedAt:     tx.CreatedAt,
	}
}
