package model

// Identity is the authenticated caller of an operation.
type Identity struct {
	UserID int64
	Role   UserRole
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
