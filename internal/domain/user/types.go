package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is the account-level role carried in the access token.
type Role string

const (
	RoleUser       Role = "user"
	RoleStaff      Role = "staff"
	RoleAdmin      Role = "admin"
	RoleSettlement Role = "settlement"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleStaff, RoleAdmin, RoleSettlement:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may act on any transaction as staff.
func (r Role) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
