package testutil

import (
	"context"

	"github.com/smsdesk/smsdesk/internal/domain/scheduledsms"
)

// InMemoryScheduledSMSStore implements scheduledsms.Repository
type InMemoryScheduledSMSStore struct {
	*InMemoryStore[*scheduledsms.ScheduledSMS]
}

func NewInMemoryScheduledSMSStore() *InMemoryScheduledSMSStore {
	return &InMemoryScheduledSMSStore{
		InMemoryStore: NewInMemoryStore[*scheduledsms.ScheduledSMS](),
	}
}

func copyScheduledSMS(m *scheduledsms.ScheduledSMS) *scheduledsms.ScheduledSMS {
	cp := *m
	cp.Recipients = append([]string(nil), m.Recipients...)
	return &cp
}

func bySendTime(a, b *scheduledsms.ScheduledSMS) bool {
	if a.SendTime.Equal(b.SendTime) {
		return a.ID < b.ID
	}
	return a.SendTime.Before(b.SendTime)
}

// Create seeds a scheduled message; the service itself never writes them
func (s *InMemoryScheduledSMSStore) Create(ctx context.Context, m *scheduledsms.ScheduledSMS) error {
	return s.InMemoryStore.Create(ctx, m.ID, copyScheduledSMS(m))
}

func (s *InMemoryScheduledSMSStore) Get(ctx context.Context, id string) (*scheduledsms.ScheduledSMS, error) {
	m, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyScheduledSMS(m), nil
}

func (s *InMemoryScheduledSMSStore) ListAll(ctx context.Context) ([]*scheduledsms.ScheduledSMS, error) {
	return s.InMemoryStore.List(ctx, nil, bySendTime)
}

func (s *InMemoryScheduledSMSStore) ListForUser(ctx context.Context, userID string) ([]*scheduledsms.ScheduledSMS, error) {
	return s.InMemoryStore.List(ctx, func(_ context.Context, m *scheduledsms.ScheduledSMS) bool {
		return m.UserID == userID
	}, bySendTime)
}
