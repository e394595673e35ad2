package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/smsdesk/smsdesk/internal/domain/user"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/postgres"
)

type userRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewUserRepository(db *postgres.DB, logger *logger.Logger) user.Repository {
	return &userRepository{db: db, logger: logger}
}

const userColumns = `id, name, email, role, password_hash, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	query := `
	INSERT INTO users (id, name, email, role, password_hash, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(
		ctx, query,
		u.ID,
		u.Name,
		u.Email,
		u.Role,
		u.PasswordHash,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("A user with this email already exists").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create user").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var u user.User
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &u, query, id); err != nil {
		return nil, r.getError(err)
	}
	return &u, nil
}

// GetByEmail matches case-insensitively, backing the login endpoint
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = $1`

	var u user.User
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &u, query, strings.ToLower(strings.TrimSpace(email))); err != nil {
		return nil, r.getError(err)
	}
	return &u, nil
}

func (r *userRepository) getError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ierr.WithError(err).
			WithHint("User not found").
			Mark(ierr.ErrNotFound)
	}
	return ierr.WithError(err).
		WithHint("Failed to get user").
		Mark(ierr.ErrDatabase)
}
