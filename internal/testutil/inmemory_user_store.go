package testutil

import (
	"context"
	"strings"

	"github.com/smsdesk/smsdesk/internal/domain/user"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
)

// InMemoryUserStore implements user.Repository
type InMemoryUserStore struct {
	*InMemoryStore[*user.User]
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		InMemoryStore: NewInMemoryStore[*user.User](),
	}
}

func copyUser(u *user.User) *user.User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

func (s *InMemoryUserStore) Create(ctx context.Context, u *user.User) error {
	if existing, err := s.GetByEmail(ctx, u.Email); err == nil && existing != nil {
		return ierr.NewError("user already exists").
			WithHint("A user with this email already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return s.InMemoryStore.Create(ctx, u.ID, copyUser(u))
}

func (s *InMemoryUserStore) GetByID(ctx context.Context, id string) (*user.User, error) {
	u, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyUser(u), nil
}

func (s *InMemoryUserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	users, err := s.InMemoryStore.List(ctx, func(_ context.Context, u *user.User) bool {
		return strings.EqualFold(u.Email, email)
	}, nil)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ierr.NewError("user not found").
			WithHint("User not found").
			Mark(ierr.ErrNotFound)
	}
	return copyUser(users[0]), nil
}
