package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/smsdesk/smsdesk/internal/domain/group"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/postgres"
)

type groupRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewGroupRepository(db *postgres.DB, logger *logger.Logger) group.Repository {
	return &groupRepository{db: db, logger: logger}
}

func (r *groupRepository) Create(ctx context.Context, g *group.Group) error {
	query := `
		INSERT INTO groups (id, name, user_id, created_at, updated_at)
		VALUES (:id, :name, :user_id, :created_at, :updated_at)`

	r.logger.Debugw("creating group", "group_id", g.ID, "user_id", g.UserID)

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, g); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create group").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *groupRepository) Get(ctx context.Context, id string) (*group.Group, error) {
	query := `SELECT id, name, user_id, created_at, updated_at FROM groups WHERE id = $1`

	var g group.Group
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &g, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHintf("Group %s was not found", id).
				WithReportableDetails(map[string]any{"group_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get group").
			Mark(ierr.ErrDatabase)
	}
	return &g, nil
}
