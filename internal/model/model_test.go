package model

import "testing"

// TestRoleKnown tests recognition of business roles.
func TestRoleKnown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		role Role
		want bool
	}{
		{name: "admin role", role: RoleAdmin, want: true},
		{name: "user role", role: RoleUser, want: true},
		{name: "guest role", role: Role("GUEST"), want: false},
		{name: "empty role", role: Role(""), want: false},
		{name: "lowercase admin is not admin", role: Role("admin"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.role.Known(); got != tt.want {
				t.Errorf("Role(%q).Known() = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

// TestRoleString tests the string representation of roles.
func TestRoleString(t *testing.T) {
	t.Parallel()

	if got := RoleAdmin.String(); got != "ADMIN" {
		t.Errorf("RoleAdmin.String() = %q, want %q", got, "ADMIN")
	}
	if got := RoleUser.String(); got != "USER" {
		t.Errorf("RoleUser.String() = %q, want %q", got, "USER")
	}
}

// TestProcessedItemIsFreshValue tests that a ProcessedItem copies the
// source item rather than aliasing it.
func TestProcessedItemIsFreshValue(t *testing.T) {
	t.Parallel()

	src := Item{ID: 1, Name: "A", Value: 100}
	processed := ProcessedItem{Item: src, Priority: true}

	processed.Name = "changed"
	if src.Name != "A" {
		t.Errorf("source item mutated: Name = %q, want %q", src.Name, "A")
	}
}
