package model

import "time"

// UserRole determines access scope for a registered user.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User represents a registered account. Role is fixed at registration.
type User struct {
	ID           int64
	Name         string
	Email        string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
}
