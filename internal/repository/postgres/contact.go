package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/smsdesk/smsdesk/internal/domain/contact"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/postgres"
)

type contactRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewContactRepository(db *postgres.DB, logger *logger.Logger) contact.Repository {
	return &contactRepository{db: db, logger: logger}
}

const contactWithOwnerSelect = `
	SELECT c.id, c.name, c.mobile, c.user_id, c.group_id, c.created_at, c.updated_at,
		u.name AS owner_name, u.email AS owner_email
	FROM contacts c
	JOIN users u ON u.id = c.user_id`

func (r *contactRepository) ListAll(ctx context.Context) ([]*contact.ContactWithOwner, error) {
	query := contactWithOwnerSelect + ` ORDER BY c.created_at DESC, c.id DESC`

	var contacts []*contact.ContactWithOwner
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &contacts, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list contacts").
			Mark(ierr.ErrDatabase)
	}
	return contacts, nil
}

func (r *contactRepository) ListForUser(ctx context.Context, userID string) ([]*contact.ContactWithOwner, error) {
	query := contactWithOwnerSelect + ` WHERE c.user_id = $1 ORDER BY c.created_at DESC, c.id DESC`

	var contacts []*contact.ContactWithOwner
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &contacts, query, userID); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list contacts").
			WithReportableDetails(map[string]any{"user_id": userID}).
			Mark(ierr.ErrDatabase)
	}
	return contacts, nil
}

func (r *contactRepository) ExistsWithMobile(ctx context.Context, groupID, userID, mobile string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM contacts WHERE group_id = $1 AND user_id = $2 AND mobile = $3
	)`

	var exists bool
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &exists, query, groupID, userID, mobile); err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to check for an existing contact").
			Mark(ierr.ErrDatabase)
	}
	return exists, nil
}

func (r *contactRepository) Get(ctx context.Context, id string) (*contact.Contact, error) {
	query := `SELECT id, name, mobile, user_id, group_id, created_at, updated_at FROM contacts WHERE id = $1`

	var c contact.Contact
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHintf("Contact %s was not found", id).
				WithReportableDetails(map[string]any{"contact_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get contact").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *contactRepository) Create(ctx context.Context, c *contact.Contact) error {
	query := `
		INSERT INTO contacts (
			id, name, mobile, user_id, group_id, created_at, updated_at
		) VALUES (
			:id, :name, :mobile, :user_id, :group_id, :created_at, :updated_at
		)`

	r.logger.Debugw("creating contact",
		"contact_id", c.ID,
		"group_id", c.GroupID,
		"user_id", c.UserID,
	)

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, c); err != nil {
		if postgres.IsUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("A contact with this mobile number already exists in this group").
				WithReportableDetails(map[string]any{"group_id": c.GroupID}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create contact").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *contactRepository) Update(ctx context.Context, c *contact.Contact) error {
	query := `
		UPDATE contacts SET
			name = :name,
			mobile = :mobile,
			user_id = :user_id,
			group_id = :group_id,
			updated_at = :updated_at
		WHERE id = :id`

	r.logger.Debugw("updating contact", "contact_id", c.ID, "group_id", c.GroupID)

	result, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, c)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("A contact with this mobile number already exists in this group").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to update contact").
			Mark(ierr.ErrDatabase)
	}
	return r.expectAffected(result, c.ID)
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	r.logger.Debugw("deleting contact", "contact_id", id)

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete contact").
			Mark(ierr.ErrDatabase)
	}
	return r.expectAffected(result, id)
}

func (r *contactRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, `DELETE FROM contacts WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to delete contacts").
			Mark(ierr.ErrDatabase)
	}
	return rowsAffected(result)
}

func (r *contactRepository) DeleteByIDsForUser(ctx context.Context, ids []string, userID string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM contacts WHERE id = ANY($1) AND user_id = $2`, pq.Array(ids), userID)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to delete contacts").
			Mark(ierr.ErrDatabase)
	}
	return rowsAffected(result)
}

func (r *contactRepository) expectAffected(result sql.Result, id string) error {
	n, err := rowsAffected(result)
	if err != nil {
		return err
	}
	if n == 0 {
		return ierr.NewError("contact not found").
			WithHintf("Contact %s was not found", id).
			WithReportableDetails(map[string]any{"contact_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func rowsAffected(result sql.Result) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to read affected rows").
			Mark(ierr.ErrDatabase)
	}
	return n, nil
}
