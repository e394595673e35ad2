package contact

import (
	"context"
)

// Repository defines the interface for contact data access.
// Listings are ordered newest first.
type Repository interface {
	ListAll(ctx context.Context) ([]*ContactWithOwner, error)
	ListForUser(ctx context.Context, userID string) ([]*ContactWithOwner, error)
	ExistsWithMobile(ctx context.Context, groupID, userID, mobile string) (bool, error)
	Get(ctx context.Context, id string) (*Contact, error)
	Create(ctx context.Context, contact *Contact) error
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, id string) error
	// DeleteByIDs removes every contact in ids and returns how many rows went away
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
	// DeleteByIDsForUser is DeleteByIDs restricted to contacts owned by userID
	DeleteByIDsForUser(ctx context.Context, ids []string, userID string) (int64, error)
}
