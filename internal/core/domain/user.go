package domain

import "time"

// Role is an account privilege level. Roles are totally ordered by rank;
// a higher rank inherits every right of the ranks below it.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superAdmin"
)

// roleRanks fixes the privilege order at process start.
var roleRanks = map[Role]int{
	RoleUser:       0,
	RoleAdmin:      1,
	RoleSuperAdmin: 2,
}

// Rank returns the privilege rank of the role, or -1 for an unknown role.
func (r Role) Rank() int {
	rank, ok := roleRanks[r]
	if !ok {
		return -1
	}
	return rank
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool { return r.Rank() >= 0 }

// User models an identity record in the users collection.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsDisabled   bool      `json:"isDisabled"`
	DocVersion   int       `json:"docVersion"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserHistory is an append-only audit snapshot written on every user
// create/update/delete. It references the user by id only; the user
// document may no longer exist.
type UserHistory struct {
	UserID     string    `json:"userId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	IsDisabled bool      `json:"isDisabled"`
	DocVersion int       `json:"docVersion"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Snapshot returns the history record for the user's current state.
func (u *User) Snapshot(at time.Time) *UserHistory {
	return &UserHistory{
		UserID:     u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		IsDisabled: u.IsDisabled,
		DocVersion: u.DocVersion,
		CreatedAt:  at,
	}
}
