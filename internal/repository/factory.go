package repository

import (
	"github.com/smsdesk/smsdesk/internal/domain/contact"
	"github.com/smsdesk/smsdesk/internal/domain/group"
	"github.com/smsdesk/smsdesk/internal/domain/scheduledsms"
	"github.com/smsdesk/smsdesk/internal/domain/user"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/postgres"
	postgresRepo "github.com/smsdesk/smsdesk/internal/repository/postgres"
)

func NewContactRepository(db *postgres.DB, logger *logger.Logger) contact.Repository {
	return postgresRepo.NewContactRepository(db, logger)
}

func NewGroupRepository(db *postgres.DB, logger *logger.Logger) group.Repository {
	return postgresRepo.NewGroupRepository(db, logger)
}

func NewUserRepository(db *postgres.DB, logger *logger.Logger) user.Repository {
	return postgresRepo.NewUserRepository(db, logger)
}

func NewScheduledSMSRepository(db *postgres.DB, logger *logger.Logger) scheduledsms.Repository {
	return postgresRepo.NewScheduledSMSRepository(db, logger)
}
