package scheduledsms

import (
	"context"
)

// Repository defines read access to scheduled messages, ordered by send time
type Repository interface {
	Get(ctx context.Context, id string) (*ScheduledSMS, error)
	ListAll(ctx context.Context) ([]*ScheduledSMS, error)
	ListForUser(ctx context.Context, userID string) ([]*ScheduledSMS, error)
}
