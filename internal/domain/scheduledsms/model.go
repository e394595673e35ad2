package scheduledsms

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/smsdesk/smsdesk/internal/types"
)

// ScheduledSMS is a message queued for future delivery. It is read-only here.
type ScheduledSMS struct {
	ID         string          `db:"id" json:"id"`
	UserID     string          `db:"user_id" json:"user_id"`
	Sender     string          `db:"sender" json:"sender"`
	Recipients pq.StringArray  `db:"recipients" json:"recipients"`
	Cost       decimal.Decimal `db:"cost" json:"cost"`
	SendTime   time.Time       `db:"send_time" json:"send_time"`
	Message    string          `db:"message" json:"message"`
	types.BaseModel
}

// RecipientCount is the number of numbers the message goes out to
func (s *ScheduledSMS) RecipientCount() int {
	return len(s.Recipients)
}
