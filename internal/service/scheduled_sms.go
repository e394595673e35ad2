package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/smsdesk/smsdesk/internal/api/dto"
	"github.com/smsdesk/smsdesk/internal/domain/scheduledsms"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
	"github.com/smsdesk/smsdesk/internal/interfaces"
	"github.com/smsdesk/smsdesk/internal/rbac"
	"github.com/smsdesk/smsdesk/internal/types"
)

type ScheduledSMSService = interfaces.ScheduledSMSService

type scheduledSMSService struct {
	ServiceParams
}

func NewScheduledSMSService(params ServiceParams) ScheduledSMSService {
	return &scheduledSMSService{
		ServiceParams: params,
	}
}

func (s *scheduledSMSService) GetScheduledSMS(ctx context.Context, caller types.Caller, id string) (*dto.ScheduledSMSResponse, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	m, err := s.ScheduledSMSRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if m.UserID != caller.UserID && !s.RBAC.HasPermission(caller.Roles, rbac.EntityScheduledSMS, rbac.ActionViewAny) {
		return nil, ierr.NewError("scheduled sms belongs to another user").
			WithHint("You are not allowed to view this scheduled message.").
			WithReportableDetails(map[string]any{"scheduled_sms_id": id}).
			Mark(ierr.ErrPermissionDenied)
	}

	return dto.NewScheduledSMSResponse(m), nil
}

func (s *scheduledSMSService) ListScheduledSMS(ctx context.Context, caller types.Caller) (*dto.ListScheduledSMSResponse, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	var (
		items []*scheduledsms.ScheduledSMS
		err   error
	)
	if s.RBAC.HasPermission(caller.Roles, rbac.EntityScheduledSMS, rbac.ActionListAll) {
		items, err = s.ScheduledSMSRepo.ListAll(ctx)
	} else {
		items, err = s.ScheduledSMSRepo.ListForUser(ctx, caller.UserID)
	}
	if err != nil {
		return nil, err
	}

	return types.NewListResponse(lo.Map(items, func(m *scheduledsms.ScheduledSMS, _ int) *dto.ScheduledSMSResponse {
		return dto.NewScheduledSMSResponse(m)
	})), nil
}
