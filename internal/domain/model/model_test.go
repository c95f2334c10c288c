package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "Pending"},
		{"completed", OrderStatusCompleted, "Completed"},
		{"failed", OrderStatusFailed, "Failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusPending, OrderStatusCompleted, OrderStatusFailed} {
		if !status.Valid() {
			t.Fatalf("expected %s to be valid", status)
		}
	}
	for _, status := range []OrderStatus{"", "Shipped", "pending", "COMPLETED"} {
		if status.Valid() {
			t.Fatalf("expected %q to be invalid", status)
		}
	}
}

func TestUserRoleValid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleCustomer.Valid() {
		t.Fatal("expected known roles to be valid")
	}
	for _, role := range []UserRole{"", "Admin", "supervisor"} {
		if role.Valid() {
			t.Fatalf("expected %q to be invalid", role)
		}
	}
}

func TestIdentityIsAdmin(t *testing.T) {
	if !(Identity{UserID: 1, Role: RoleAdmin}).IsAdmin() {
		t.Fatal("expected admin identity")
	}
	if (Identity{UserID: 1, Role: RoleCustomer}).IsAdmin() {
		t.Fatal("expected non-admin identity")
	}
}
