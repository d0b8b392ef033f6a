package domain

import "slices"

// Role grants access to parts of the back office.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// User represents a back-office operator.
type User struct {
	UserID       string  `json:"id"`
	Name         string  `json:"name"`
	Phone        *string `json:"phone,omitempty"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Roles        []Role  `json:"roles"`
	Timestamps
}

// HasRole reports whether the user holds the given role.
func (u User) HasRole(role Role) bool {
	return HasAnyRole(u.Roles, role)
}

// CanManageUsers is true for superadmins only.
func (u User) CanManageUsers() bool {
	return u.HasRole(RoleSuperAdmin)
}

// CanManageClients is true for admins and superadmins.
func (u User) CanManageClients() bool {
	return HasAnyRole(u.Roles, RoleAdmin, RoleSuperAdmin)
}

// HasAnyRole reports whether held contains at least one of wanted.
func HasAnyRole(held []Role, wanted ...Role) bool {
	for _, w := range wanted {
		if slices.Contains(held, w) {
			return true
		}
	}
	return false
}
