package model

import "time"

// Transaction is an immutable settlement record linked to an existing order.
// OccurredAt is caller-supplied, CreatedAt is assigned by storage.
type Transaction struct {
	ID            int64
	ExternalID    string
	OrderID       int64
	Amount        float64
	PaymentMethod string
	OccurredAt    time.Time
	CreatedAt     time.Time
}
