package audit

import (
	"time"

	"github.com/google/uuid"
)

// EntityKind names the aggregate an audit entry belongs to.
type EntityKind string

const (
	EntityBooking  EntityKind = "booking"
	EntityUnit     EntityKind = "unit"
	EntityBusiness EntityKind = "business"
)

// Entry is one append-only audit record. What the source UI kept as
// free-text inside the booking's notes field lives here instead, keyed by
// entity and decoupled from the entity's own mutable fields.
type Entry struct {
	ID         uuid.UUID
	EntityKind EntityKind
	EntityID   uuid.UUID
	ActorID    uuid.UUID
	Action     string
	Detail     string
	CreatedAt  time.Time
}

func NewEntry(kind EntityKind, entityID, actorID uuid.UUID, action, detail string, at time.Time) Entry {
	return Entry{
		ID:         uuid.New(),
		EntityKind: kind,
		EntityID:   entityID,
		ActorID:    actorID,
		Action:     action,
		Detail:     detail,
		CreatedAt:  at,
	}
}
