package service

import (
	"github.com/smsdesk/smsdesk/internal/auth"
	"github.com/smsdesk/smsdesk/internal/config"
	"github.com/smsdesk/smsdesk/internal/domain/contact"
	"github.com/smsdesk/smsdesk/internal/domain/group"
	"github.com/smsdesk/smsdesk/internal/domain/scheduledsms"
	"github.com/smsdesk/smsdesk/internal/domain/user"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/phone"
	"github.com/smsdesk/smsdesk/internal/postgres"
	"github.com/smsdesk/smsdesk/internal/rbac"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient
	Phone  *phone.Normalizer
	RBAC   *rbac.RBACService
	Auth   auth.Provider

	// Repositories
	ContactRepo      contact.Repository
	GroupRepo        group.Repository
	UserRepo         user.Repository
	ScheduledSMSRepo scheduledsms.Repository
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	phoneNormalizer *phone.Normalizer,
	rbacService *rbac.RBACService,
	authProvider auth.Provider,
	contactRepo contact.Repository,
	groupRepo group.Repository,
	userRepo user.Repository,
	scheduledSMSRepo scheduledsms.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:           logger,
		Config:           config,
		DB:               db,
		Phone:            phoneNormalizer,
		RBAC:             rbacService,
		Auth:             authProvider,
		ContactRepo:      contactRepo,
		GroupRepo:        groupRepo,
		UserRepo:         userRepo,
		ScheduledSMSRepo: scheduledSMSRepo,
	}
}
