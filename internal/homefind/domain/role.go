package domain

import "errors"

// Role is the closed set of account roles. New accounts default to
// RoleCustomer unless explicitly elevated.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleVendor     Role = "vendor"
	RoleCustomer   Role = "customer"
)

// ErrUnknownRole reports a role string outside the closed set.
var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole validates a role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSuperAdmin, RoleVendor, RoleCustomer:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

func (r Role) String() string { return string(r) }

// CanManageProperties reports whether the role may create and edit listings.
func (r Role) CanManageProperties() bool {
	return r == RoleVendor || r == RoleSuperAdmin
}

// IsAdmin reports whether the role has administrative access.
func (r Role) IsAdmin() bool { return r == RoleSuperAdmin }
