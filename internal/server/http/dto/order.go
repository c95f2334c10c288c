package dto

import "time"

// LineItemPayload mirrors a single order position on the wire.
type LineItemPayload struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gte=1"`
	UnitPrice float64 `json:"price" binding:"gte=0"`
}

// CreateOrderRequest describes order placement payload. OrderID is the
// caller-assigned external identifier.
type CreateOrderRequest struct {
	OrderID     string            `json:"orderId" binding:"required"`
	Items       []LineItemPayload `json:"items" binding:"required,min=1,dive"`
	TotalAmount float64           `json:"totalAmount" binding:"gte=0"`
}

// UpdateOrderStatusRequest carries the new status for an order.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Completed Failed"`
}

// OrderResponse describes an order on the wire.
type OrderResponse struct {
	ID          int64             `json:"id"`
	OrderID     string            `json:"orderId"`
	UserID      int64             `json:"userId"`
	Items       []LineItemPayload `json:"items"`
	TotalAmount float64           `json:"totalAmount"`
	Status      string            `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
