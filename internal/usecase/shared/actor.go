package shared

import (
	"stayops/internal/domain/actor"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller. Staff and owner tokens are
// scoped to one business; admin tokens are platform-wide.
type Actor struct {
	ID         uuid.UUID
	Role       actor.Role
	BusinessID *uuid.UUID
}

// CanAccessBusiness reports whether the actor may operate on the business.
func (a Actor) CanAccessBusiness(businessID uuid.UUID) bool {
	if a.Role == actor.RoleAdmin {
		return true
	}
	return a.BusinessID != nil && *a.BusinessID == businessID
}

// IsAdmin reports platform-wide access.
func (a Actor) IsAdmin() bool {
	return a.Role == actor.RoleAdmin
}
