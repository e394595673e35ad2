package internal

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/smsdesk/smsdesk/internal/auth"
	"github.com/smsdesk/smsdesk/internal/config"
	"github.com/smsdesk/smsdesk/internal/domain/group"
	"github.com/smsdesk/smsdesk/internal/domain/user"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/postgres"
	"github.com/smsdesk/smsdesk/internal/repository"
	"github.com/smsdesk/smsdesk/internal/types"
)

type scriptEnv struct {
	cfg          *config.Configuration
	log          *logger.Logger
	db           *postgres.DB
	userRepo     user.Repository
	groupRepo    group.Repository
	authProvider auth.Provider
}

func newScriptEnv() (*scriptEnv, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := postgres.NewDB(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return &scriptEnv{
		cfg:          cfg,
		log:          log,
		db:           db,
		userRepo:     repository.NewUserRepository(db, log),
		groupRepo:    repository.NewGroupRepository(db, log),
		authProvider: auth.NewProvider(cfg),
	}, nil
}

// AddUser creates a user from USER_EMAIL, NAME, USER_PASSWORD and USER_ROLE
func AddUser() error {
	email := os.Getenv("USER_EMAIL")
	name := os.Getenv("NAME")
	password := os.Getenv("USER_PASSWORD")
	role := types.UserRole(os.Getenv("USER_ROLE"))
	if role == "" {
		role = types.UserRoleUser
	}

	if email == "" || password == "" {
		return ierr.NewError("email and password are required").
			WithHint("Pass -user-email and -password").
			Mark(ierr.ErrValidation)
	}
	if err := role.Validate(); err != nil {
		return err
	}

	env, err := newScriptEnv()
	if err != nil {
		return err
	}
	defer env.db.Close()

	hash, err := env.authProvider.HashPassword(password)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	u := user.NewUser(name, email, role, hash)
	if err := env.userRepo.Create(ctx, u); err != nil {
		return err
	}

	env.log.Infow("created user", "user_id", u.ID, "email", u.Email, "role", u.Role)
	return nil
}

// AddGroup creates a group named NAME owned by USER_ID
func AddGroup() error {
	name := os.Getenv("NAME")
	userID := os.Getenv("USER_ID")
	if name == "" || userID == "" {
		return ierr.NewError("name and user id are required").
			WithHint("Pass -name and -user-id").
			Mark(ierr.ErrValidation)
	}

	env, err := newScriptEnv()
	if err != nil {
		return err
	}
	defer env.db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	owner, err := env.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	g := &group.Group{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_GROUP),
		Name:      name,
		UserID:    owner.ID,
		BaseModel: types.GetDefaultBaseModel(),
	}
	if err := env.groupRepo.Create(ctx, g); err != nil {
		return err
	}

	env.log.Infow("created group", "group_id", g.ID, "name", g.Name, "user_id", owner.ID)
	return nil
}
