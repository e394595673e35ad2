package dto

import (
	"time"

	"github.com/smsdesk/smsdesk/internal/domain/scheduledsms"
	"github.com/smsdesk/smsdesk/internal/types"
)

// ScheduledSMSResponse is the read-only view of a scheduled message
type ScheduledSMSResponse struct {
	ID             string    `json:"id"`
	From           string    `json:"from"`
	Recipients     []string  `json:"recipients"`
	RecipientCount int       `json:"recipient_count"`
	Cost           string    `json:"cost"`
	SendTime       time.Time `json:"send_time"`
	Message        string    `json:"message"`
}

func NewScheduledSMSResponse(m *scheduledsms.ScheduledSMS) *ScheduledSMSResponse {
	recipients := []string(m.Recipients)
	if recipients == nil {
		recipients = []string{}
	}
	return &ScheduledSMSResponse{
		ID:             m.ID,
		From:           m.Sender,
		Recipients:     recipients,
		RecipientCount: m.RecipientCount(),
		Cost:           m.Cost.StringFixed(2),
		SendTime:       m.SendTime,
		Message:        m.Message,
	}
}

type ListScheduledSMSResponse = types.ListResponse[*ScheduledSMSResponse]
