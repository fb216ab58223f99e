package booking

import "errors"

var (
	ErrMissingIdentityNumber = errors.New("identity number is required")
	ErrMissingNationality    = errors.New("nationality is required")
	ErrMissingPhone          = errors.New("phone number is required")
	ErrMissingAuthRef        = errors.New("reschedule authorization reference is required")
)

// GuestIdentity is the identity capture required at digital check-in.
type GuestIdentity struct {
	IdentityNumber string
	Nationality    string
	Phone          string
}

func (g GuestIdentity) Validate() error {
	if g.IdentityNumber == "" {
		return ErrMissingIdentityNumber
	}
	if g.Nationality == "" {
		return ErrMissingNationality
	}
	if g.Phone == "" {
		return ErrMissingPhone
	}
	return nil
}
