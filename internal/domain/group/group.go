package group

import (
	"context"

	"github.com/smsdesk/smsdesk/internal/types"
)

// Group is a named collection of contacts owned by a user.
// Groups are managed outside this service; contacts only resolve them by id.
type Group struct {
	ID     string `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	UserID string `db:"user_id" json:"user_id"`
	types.BaseModel
}

// Repository defines the interface for group data operations
type Repository interface {
	Create(ctx context.Context, group *Group) error
	Get(ctx context.Context, id string) (*Group, error)
}
