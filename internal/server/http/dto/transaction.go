package dto

import "time"

// CreateTransactionRequest describes settlement submission payload.
// OrderID references the system-assigned order identifier.
type CreateTransactionRequest struct {
	TransactionID string    `json:"transactionId" binding:"required"`
	OrderID       int64     `json:"orderId" binding:"required"`
	Amount        float64   `json:"amount" binding:"gte=0"`
	PaymentMethod string    `json:"paymentMethod" binding:"required"`
	Timestamp     time.Time `json:"timestamp" binding:"required"`
}

// TransactionResponse describes a transaction on the wire.
type TransactionResponse struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"transactionId"`
	OrderID       int64     `json:"orderId"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	Timestamp     time.Time `json:"timestamp"`
	CreatedAt     time.Time `json:"createdAt"`
}
