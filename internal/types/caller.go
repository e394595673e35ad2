package types

import (
	"context"

	ierr "github.com/smsdesk/smsdesk/internal/errors"
)

// Caller is the authenticated identity an operation runs on behalf of.
type Caller struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
}

// CallerFromContext builds a Caller from the values the auth middleware put in the context.
func CallerFromContext(ctx context.Context) Caller {
	return Caller{
		UserID: GetUserID(ctx),
		Roles:  GetRoles(ctx),
	}
}

func (c Caller) Validate() error {
	if c.UserID == "" {
		return ierr.NewError("caller has no user id").
			WithHint("You must be signed in to perform this action.").
			Mark(ierr.ErrPermissionDenied)
	}
	return nil
}
