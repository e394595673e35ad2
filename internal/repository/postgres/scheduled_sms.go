package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/smsdesk/smsdesk/internal/domain/scheduledsms"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/postgres"
)

type scheduledSMSRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewScheduledSMSRepository(db *postgres.DB, logger *logger.Logger) scheduledsms.Repository {
	return &scheduledSMSRepository{db: db, logger: logger}
}

const scheduledSMSSelect = `
	SELECT id, user_id, sender, recipients, cost, send_time, message, created_at, updated_at
	FROM scheduled_sms`

func (r *scheduledSMSRepository) Get(ctx context.Context, id string) (*scheduledsms.ScheduledSMS, error) {
	var s scheduledsms.ScheduledSMS
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &s, scheduledSMSSelect+` WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHintf("Scheduled message %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get scheduled message").
			Mark(ierr.ErrDatabase)
	}
	return &s, nil
}

func (r *scheduledSMSRepository) ListAll(ctx context.Context) ([]*scheduledsms.ScheduledSMS, error) {
	var items []*scheduledsms.ScheduledSMS
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &items, scheduledSMSSelect+` ORDER BY send_time ASC, id ASC`); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list scheduled messages").
			Mark(ierr.ErrDatabase)
	}
	return items, nil
}

func (r *scheduledSMSRepository) ListForUser(ctx context.Context, userID string) ([]*scheduledsms.ScheduledSMS, error) {
	var items []*scheduledsms.ScheduledSMS
	query := scheduledSMSSelect + ` WHERE user_id = $1 ORDER BY send_time ASC, id ASC`
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &items, query, userID); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list scheduled messages").
			Mark(ierr.ErrDatabase)
	}
	return items, nil
}
