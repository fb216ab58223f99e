package unit

import (
	"errors"
	"time"

	"stayops/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus   = errors.New("invalid unit status")
	ErrEmptyName       = errors.New("unit name cannot be empty")
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
	ErrNegativePrice   = errors.New("base price cannot be negative")
	ErrUnitNotBookable = errors.New("unit cannot be made available in its current status")
)

type Status string

const (
	StatusReady       Status = "ready"
	StatusCleaning    Status = "cleaning"
	StatusDirty       Status = "dirty"
	StatusMaintenance Status = "maintenance"
	StatusBlocked     Status = "blocked"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReady, StatusCleaning, StatusDirty, StatusMaintenance, StatusBlocked:
		return true
	default:
		return false
	}
}

// blocksAvailability reports whether a unit in this status must be pulled
// from public listing.
func (s Status) blocksAvailability() bool {
	return s == StatusBlocked || s == StatusMaintenance
}

// Unit is one rentable asset belonging to exactly one business. Owners
// manage the full record; on-site staff only move it between operational
// statuses.
type Unit struct {
	id                 uuid.UUID
	businessID         uuid.UUID
	name               string
	basePrice          pricing.Money
	capacity           int
	amenities          []string
	status             Status
	available          bool
	checkInPolicy      string
	checkOutPolicy     string
	cancellationPolicy string
	createdAt          time.Time
	updatedAt          time.Time
}

func NewUnit(businessID uuid.UUID, name string, basePrice pricing.Money, capacity int, amenities []string) (*Unit, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if basePrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Unit{
		id:         uuid.New(),
		businessID: businessID,
		name:       name,
		basePrice:  basePrice,
		capacity:   capacity,
		amenities:  amenities,
		status:     StatusReady,
		available:  true,
	}, nil
}

func ReconstructUnit(
	id, businessID uuid.UUID,
	name string,
	basePrice pricing.Money,
	capacity int,
	amenities []string,
	status Status,
	available bool,
	checkInPolicy, checkOutPolicy, cancellationPolicy string,
	createdAt, updatedAt time.Time,
) *Unit {
	return &Unit{
		id:                 id,
		businessID:         businessID,
		name:               name,
		basePrice:          basePrice,
		capacity:           capacity,
		amenities:          amenities,
		status:             status,
		available:          available,
		checkInPolicy:      checkInPolicy,
		checkOutPolicy:     checkOutPolicy,
		cancellationPolicy: cancellationPolicy,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// SetStatus moves the unit between operational statuses. Blocked and
// maintenance force the unit off public listing.
func (u *Unit) SetStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	u.status = s
	if s.blocksAvailability() {
		u.available = false
	}
	return nil
}

// SetAvailable toggles public listing. A blocked or maintenance unit cannot
// be listed.
func (u *Unit) SetAvailable(available bool) error {
	if available && u.status.blocksAvailability() {
		return ErrUnitNotBookable
	}
	u.available = available
	return nil
}

// MarkDirtyAfterCheckout is the checkout side effect: the unit needs a
// cleaning cycle before it is bookable again.
func (u *Unit) MarkDirtyAfterCheckout() {
	u.status = StatusDirty
	u.available = false
}

func (u *Unit) IsBookable() bool {
	return u.available
}

func (u *Unit) UpdateDetails(name string, basePrice pricing.Money, capacity int, amenities []string) error {
	if name == "" {
		return ErrEmptyName
	}
	if capacity < 1 {
		return ErrInvalidCapacity
	}
	if basePrice.IsNegative() {
		return ErrNegativePrice
	}
	u.name = name
	u.basePrice = basePrice
	u.capacity = capacity
	u.amenities = amenities
	return nil
}

func (u *Unit) SetPolicies(checkIn, checkOut, cancellation string) {
	u.checkInPolicy = checkIn
	u.checkOutPolicy = checkOut
	u.cancellationPolicy = cancellation
}

func (u *Unit) ID() uuid.UUID              { return u.id }
func (u *Unit) BusinessID() uuid.UUID      { return u.businessID }
func (u *Unit) Name() string               { return u.name }
func (u *Unit) BasePrice() pricing.Money   { return u.basePrice }
func (u *Unit) Capacity() int              { return u.capacity }
func (u *Unit) Amenities() []string        { return u.amenities }
func (u *Unit) Status() Status             { return u.status }
func (u *Unit) Available() bool            { return u.available }
func (u *Unit) CheckInPolicy() string      { return u.checkInPolicy }
func (u *Unit) CheckOutPolicy() string     { return u.checkOutPolicy }
func (u *Unit) CancellationPolicy() string { return u.cancellationPolicy }
func (u *Unit) CreatedAt() time.Time       { return u.createdAt }
func (u *Unit) UpdatedAt() time.Time       { return u.updatedAt }
