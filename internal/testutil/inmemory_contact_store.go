package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/smsdesk/smsdesk/internal/domain/contact"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
)

// InMemoryContactStore implements contact.Repository. Owner identity for
// listings is joined from the given user store.
type InMemoryContactStore struct {
	*InMemoryStore[*contact.Contact]
	users *InMemoryUserStore
}

func NewInMemoryContactStore(users *InMemoryUserStore) *InMemoryContactStore {
	return &InMemoryContactStore{
		InMemoryStore: NewInMemoryStore[*contact.Contact](),
		users:         users,
	}
}

func copyContact(c *contact.Contact) *contact.Contact {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func newestFirst(a, b *contact.Contact) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID > b.ID
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func (s *InMemoryContactStore) withOwners(ctx context.Context, items []*contact.Contact) []*contact.ContactWithOwner {
	return lo.Map(items, func(c *contact.Contact, _ int) *contact.ContactWithOwner {
		out := &contact.ContactWithOwner{Contact: *c}
		if u, err := s.users.GetByID(ctx, c.UserID); err == nil {
			out.OwnerName = u.Name
			out.OwnerEmail = u.Email
		}
		return out
	})
}

func (s *InMemoryContactStore) ListAll(ctx context.Context) ([]*contact.ContactWithOwner, error) {
	items, err := s.InMemoryStore.List(ctx, nil, newestFirst)
	if err != nil {
		return nil, err
	}
	return s.withOwners(ctx, items), nil
}

func (s *InMemoryContactStore) ListForUser(ctx context.Context, userID string) ([]*contact.ContactWithOwner, error) {
	items, err := s.InMemoryStore.List(ctx, func(_ context.Context, c *contact.Contact) bool {
		return c.UserID == userID
	}, newestFirst)
	if err != nil {
		return nil, err
	}
	return s.withOwners(ctx, items), nil
}

func (s *InMemoryContactStore) ExistsWithMobile(ctx context.Context, groupID, userID, mobile string) (bool, error) {
	n, err := s.InMemoryStore.Count(ctx, func(_ context.Context, c *contact.Contact) bool {
		return c.GroupID == groupID && c.UserID == userID && c.Mobile == mobile
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *InMemoryContactStore) Get(ctx context.Context, id string) (*contact.Contact, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyContact(c), nil
}

// Create enforces the (group_id, user_id, mobile) unique index
func (s *InMemoryContactStore) Create(ctx context.Context, c *contact.Contact) error {
	if err := s.checkUnique(ctx, c); err != nil {
		return err
	}
	return s.InMemoryStore.Create(ctx, c.ID, copyContact(c))
}

func (s *InMemoryContactStore) Update(ctx context.Context, c *contact.Contact) error {
	if err := s.checkUnique(ctx, c); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, c.ID, copyContact(c))
}

func (s *InMemoryContactStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func (s *InMemoryContactStore) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	return s.InMemoryStore.DeleteWhere(ctx, func(_ context.Context, c *contact.Contact) bool {
		return lo.Contains(ids, c.ID)
	})
}

func (s *InMemoryContactStore) DeleteByIDsForUser(ctx context.Context, ids []string, userID string) (int64, error) {
	return s.InMemoryStore.DeleteWhere(ctx, func(_ context.Context, c *contact.Contact) bool {
		return c.UserID == userID && lo.Contains(ids, c.ID)
	})
}

func (s *InMemoryContactStore) checkUnique(ctx context.Context, c *contact.Contact) error {
	clashes, err := s.InMemoryStore.Count(ctx, func(_ context.Context, other *contact.Contact) bool {
		return other.ID != c.ID &&
			other.GroupID == c.GroupID &&
			other.UserID == c.UserID &&
			other.Mobile == c.Mobile
	})
	if err != nil {
		return err
	}
	if clashes > 0 {
		return ierr.NewError("duplicate key value violates unique constraint").
			WithHint("A contact with this mobile number already exists in this group").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}
