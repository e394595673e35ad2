package testutil

import (
	"context"

	"github.com/smsdesk/smsdesk/internal/domain/group"
)

// InMemoryGroupStore implements group.Repository
type InMemoryGroupStore struct {
	*InMemoryStore[*group.Group]
}

func NewInMemoryGroupStore() *InMemoryGroupStore {
	return &InMemoryGroupStore{
		InMemoryStore: NewInMemoryStore[*group.Group](),
	}
}

func (s *InMemoryGroupStore) Create(ctx context.Context, g *group.Group) error {
	cp := *g
	return s.InMemoryStore.Create(ctx, g.ID, &cp)
}

func (s *InMemoryGroupStore) Get(ctx context.Context, id string) (*group.Group, error) {
	g, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cp := *g
	return &cp, nil
}
