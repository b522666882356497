// Package rbac holds the static role-based access control policy: which
// rights each role grants, which roles may manage users other than
// themselves, and the rank guard applied to role changes. The tables are
// built once at init and only read afterwards.
package rbac

import (
	"github.com/tenantive/accounts-api/internal/core/domain"
)

// Permission names a single permitted action.
type Permission string

const (
	GetMe          Permission = "getMe"
	UpdateMe       Permission = "updateMe"
	DeleteMe       Permission = "deleteMe"
	GetUsers       Permission = "getUsers"
	ManageUsers    Permission = "manageUsers"
	GetOrgs        Permission = "getOrgs"
	ManageOrgs     Permission = "manageOrgs"
	GetProducts    Permission = "getProducts"
	ManageProducts Permission = "manageProducts"
	GetItems       Permission = "getItems"
	ManageItems    Permission = "manageItems"
)

// rights granted per role in addition to everything granted to lower ranks.
var extraRights = map[domain.Role][]Permission{
	domain.RoleUser: {
		GetMe, UpdateMe, DeleteMe,
		GetOrgs, GetProducts, GetItems,
	},
	domain.RoleAdmin: {
		GetUsers, ManageUsers,
		ManageOrgs, ManageProducts, ManageItems,
	},
	domain.RoleSuperAdmin: {},
}

// roleRights is the full table, built so each role is a superset of every
// lower-ranked role.
var roleRights = map[domain.Role][]Permission{}

// overrideRoles may act on users other than themselves when the required
// rights include user management.
var overrideRoles = map[domain.Role]struct{}{
	domain.RoleAdmin:      {},
	domain.RoleSuperAdmin: {},
}

func init() {
	ordered := []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin}
	var inherited []Permission
	for _, role := range ordered {
		inherited = append(inherited, extraRights[role]...)
		rights := make([]Permission, len(inherited))
		copy(rights, inherited)
		roleRights[role] = rights
	}
}

// RightsFor returns the permissions granted to a role. Unknown roles have
// no rights.
func RightsFor(role domain.Role) []Permission {
	return roleRights[role]
}

// HasRequiredRights reports whether any of the required permissions is
// present in granted. OR semantics: a route reachable via multiple
// alternative permissions needs only one of them.
func HasRequiredRights(required, granted []Permission) bool {
	for _, req := range required {
		for _, g := range granted {
			if req == g {
				return true
			}
		}
	}
	return false
}

// CanActOnSelf applies the self-management override. When the required
// rights include user management and the target is a different user, the
// actor must hold one of the override roles. Acting on oneself (or on
// routes without a target id) is always permitted by this rule.
func CanActOnSelf(required []Permission, actorRole domain.Role, actorID, targetID string) bool {
	managesUsers := false
	for _, req := range required {
		if req == ManageUsers {
			managesUsers = true
			break
		}
	}
	if !managesUsers || targetID == "" || actorID == targetID {
		return true
	}
	_, ok := overrideRoles[actorRole]
	return ok
}

// CanChangeRole reports whether the actor may set the target's role to
// next. Nobody may assign a rank above their own, and a target already
// ranked above the actor cannot be touched.
func CanChangeRole(actorRole, currentRole, nextRole domain.Role) bool {
	actor := actorRole.Rank()
	return nextRole.Rank() <= actor && currentRole.Rank() <= actor
}
