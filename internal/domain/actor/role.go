package actor

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role identifies which dashboard a caller belongs to. Staff and owner are
// scoped to a single business; admin is platform-wide; guest is a paying
// customer.
type Role string

const (
	RoleGuest Role = "guest"
	RoleStaff Role = "staff"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleStaff, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanOperateDesk reports whether the role may perform on-site booking
// actions (approve, reject, check-in, check-out, payment verification).
func (r Role) CanOperateDesk() bool {
	return r == RoleStaff || r == RoleOwner || r == RoleAdmin
}
