package service

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/smsdesk/smsdesk/internal/api/dto"
	"github.com/smsdesk/smsdesk/internal/domain/scheduledsms"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
	"github.com/smsdesk/smsdesk/internal/testutil"
	"github.com/smsdesk/smsdesk/internal/types"
	"github.com/stretchr/testify/suite"
)

type ScheduledSMSServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ScheduledSMSService

	userLater *scheduledsms.ScheduledSMS
	userSoon  *scheduledsms.ScheduledSMS
	adminOnly *scheduledsms.ScheduledSMS
}

func TestScheduledSMSService(t *testing.T) {
	suite.Run(t, new(ScheduledSMSServiceSuite))
}

func (s *ScheduledSMSServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.service = NewScheduledSMSService(ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		DB:               s.GetDB(),
		RBAC:             s.GetRBAC(),
		ScheduledSMSRepo: stores.ScheduledSMSRepo,
	})

	now := s.GetNow()
	s.userLater = s.seedMessage(s.User().ID, now.Add(48*time.Hour), "2.40", "+254712345678", "+254722000111")
	s.userSoon = s.seedMessage(s.User().ID, now.Add(time.Hour), "0.80", "+254733444555")
	s.adminOnly = s.seedMessage(s.Admin().ID, now.Add(24*time.Hour), "0.80", "+254700111222")
}

func (s *ScheduledSMSServiceSuite) seedMessage(userID string, sendTime time.Time, cost string, recipients ...string) *scheduledsms.ScheduledSMS {
	m := &scheduledsms.ScheduledSMS{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SCHEDULED_SMS),
		UserID:     userID,
		Sender:     "SMSDESK",
		Recipients: pq.StringArray(recipients),
		Cost:       decimal.RequireFromString(cost),
		SendTime:   sendTime,
		Message:    "Reminder: meeting at 10am",
		BaseModel:  types.GetDefaultBaseModel(),
	}
	s.Require().NoError(s.GetStores().ScheduledSMSRepo.Create(context.Background(), m))
	return m
}

func (s *ScheduledSMSServiceSuite) TestGetScheduledSMS() {
	s.Run("owner_sees_details", func() {
		resp, err := s.service.GetScheduledSMS(s.GetContext(), s.UserCaller(), s.userLater.ID)
		s.NoError(err)
		s.Equal("SMSDESK", resp.From)
		s.Equal([]string{"+254712345678", "+254722000111"}, resp.Recipients)
		s.Equal(2, resp.RecipientCount)
		s.Equal("2.40", resp.Cost)
		s.Equal("Reminder: meeting at 10am", resp.Message)
		s.True(resp.SendTime.Equal(s.userLater.SendTime))
	})

	s.Run("admin_sees_any", func() {
		resp, err := s.service.GetScheduledSMS(s.GetContext(), s.AdminCaller(), s.userSoon.ID)
		s.NoError(err)
		s.Equal(s.userSoon.ID, resp.ID)
	})

	s.Run("other_user_is_denied", func() {
		_, err := s.service.GetScheduledSMS(s.GetContext(), s.UserCaller(), s.adminOnly.ID)
		s.True(ierr.IsPermissionDenied(err))
	})

	s.Run("unknown_id", func() {
		_, err := s.service.GetScheduledSMS(s.GetContext(), s.AdminCaller(), "ssms_missing")
		s.True(ierr.IsNotFound(err))
	})
}

func (s *ScheduledSMSServiceSuite) TestListScheduledSMS() {
	ids := func(resp *dto.ListScheduledSMSResponse) []string {
		return lo.Map(resp.Items, func(m *dto.ScheduledSMSResponse, _ int) string { return m.ID })
	}

	resp, err := s.service.ListScheduledSMS(s.GetContext(), s.UserCaller())
	s.NoError(err)
	s.Equal([]string{s.userSoon.ID, s.userLater.ID}, ids(resp))

	resp, err = s.service.ListScheduledSMS(s.GetContext(), s.AdminCaller())
	s.NoError(err)
	s.Equal([]string{s.userSoon.ID, s.adminOnly.ID, s.userLater.ID}, ids(resp))
	s.Equal(3, resp.Total)
}
