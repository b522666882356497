package rbac

import (
	"testing"

	"github.com/tenantive/accounts-api/internal/core/domain"
)

func contains(rights []Permission, p Permission) bool {
	for _, r := range rights {
		if r == p {
			return true
		}
	}
	return false
}

func TestRightsFor_RankSupersets(t *testing.T) {
	user := RightsFor(domain.RoleUser)
	admin := RightsFor(domain.RoleAdmin)
	super := RightsFor(domain.RoleSuperAdmin)

	for _, p := range user {
		if !contains(admin, p) {
			t.Fatalf("admin missing user right %q", p)
		}
	}
	for _, p := range admin {
		if !contains(super, p) {
			t.Fatalf("superAdmin missing admin right %q", p)
		}
	}
	if contains(user, ManageUsers) {
		t.Fatalf("user must not have manageUsers")
	}
	if !contains(admin, ManageUsers) {
		t.Fatalf("admin must have manageUsers")
	}
}

func TestRightsFor_UnknownRole(t *testing.T) {
	if rights := RightsFor(domain.Role("ghost")); len(rights) != 0 {
		t.Fatalf("unknown role should have no rights, got %v", rights)
	}
}

func TestHasRequiredRights_OrSemantics(t *testing.T) {
	granted := []Permission{GetMe, UpdateMe}

	if !HasRequiredRights([]Permission{ManageUsers, UpdateMe}, granted) {
		t.Fatalf("one matching right out of several required should allow")
	}
	if HasRequiredRights([]Permission{ManageUsers, GetUsers}, granted) {
		t.Fatalf("no matching right should deny")
	}
	if HasRequiredRights(nil, granted) {
		t.Fatalf("empty required set should deny")
	}
}

func TestCanActOnSelf(t *testing.T) {
	required := []Permission{ManageUsers, UpdateMe}

	tests := []struct {
		name     string
		role     domain.Role
		actorID  string
		targetID string
		want     bool
	}{
		{"user on self", domain.RoleUser, "u1", "u1", true},
		{"user on other", domain.RoleUser, "u1", "u2", false},
		{"admin on other", domain.RoleAdmin, "a1", "u2", true},
		{"superAdmin on other", domain.RoleSuperAdmin, "s1", "u2", true},
		{"user, no target id", domain.RoleUser, "u1", "", true},
	}
	for _, tt := range tests {
		if got := CanActOnSelf(required, tt.role, tt.actorID, tt.targetID); got != tt.want {
			t.Fatalf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}

	// Required rights without user management never trigger the override.
	if !CanActOnSelf([]Permission{GetUsers}, domain.RoleUser, "u1", "u2") {
		t.Fatalf("self rule should not apply without manageUsers in required set")
	}
}

func TestCanChangeRole(t *testing.T) {
	tests := []struct {
		name            string
		actor, cur, new domain.Role
		want            bool
	}{
		{"admin promotes user to admin", domain.RoleAdmin, domain.RoleUser, domain.RoleAdmin, true},
		{"admin promotes user to superAdmin", domain.RoleAdmin, domain.RoleUser, domain.RoleSuperAdmin, false},
		{"user promotes self to admin", domain.RoleUser, domain.RoleUser, domain.RoleAdmin, false},
		{"admin demotes self to user", domain.RoleAdmin, domain.RoleAdmin, domain.RoleUser, true},
		{"admin touches superAdmin", domain.RoleAdmin, domain.RoleSuperAdmin, domain.RoleUser, false},
		{"superAdmin promotes admin", domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleSuperAdmin, true},
	}
	for _, tt := range tests {
		if got := CanChangeRole(tt.actor, tt.cur, tt.new); got != tt.want {
			t.Fatalf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}
