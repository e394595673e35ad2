package types

import (
	ierr "github.com/smsdesk/smsdesk/internal/errors"
)

// UserRole is the single role a user account carries.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) Validate() error {
	switch r {
	case UserRoleAdmin, UserRoleUser:
		return nil
	}
	return ierr.NewError("invalid user role").
		WithHintf("Unknown role %q", string(r)).
		WithReportableDetails(map[string]any{
			"allowed": []UserRole{UserRoleAdmin, UserRoleUser},
		}).
		Mark(ierr.ErrValidation)
}

// DefaultCountry is the only country contacts may belong to.
const DefaultCountry = "KE"
