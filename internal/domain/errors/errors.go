package errors

import "errors"

var (
	ErrEmailInUse             = errors.New("email already in use")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrDuplicateOrderID       = errors.New("order id already exists")
	ErrDuplicateTransactionID = errors.New("transaction id already exists")
	ErrInvalidOrderRef        = errors.New("invalid order reference")
	ErrNotFound               = errors.New("not found")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidStatus          = errors.New("invalid order status")
	ErrInvalidAmount          = errors.New("invalid amount")
)
