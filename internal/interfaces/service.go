package interfaces

import (
	"context"

	"github.com/smsdesk/smsdesk/internal/api/dto"
	"github.com/smsdesk/smsdesk/internal/types"
)

// ContactService defines the interface for contact operations.
// Mutations answer with a Result on success and a hinted error on failure.
type ContactService interface {
	ListContacts(ctx context.Context, caller types.Caller, groupID string) (*dto.ListContactsResponse, error)
	GetCreateForm(ctx context.Context, caller types.Caller, groupID string) (*dto.ContactFormResponse, error)
	GetEditForm(ctx context.Context, caller types.Caller, groupID, contactID string) (*dto.ContactFormResponse, error)
	CreateContact(ctx context.Context, caller types.Caller, groupID string, req dto.CreateContactRequest) (*types.Result, error)
	UpdateContact(ctx context.Context, caller types.Caller, groupID, contactID string, req dto.UpdateContactRequest) (*types.Result, error)
	DeleteContact(ctx context.Context, caller types.Caller, groupID, contactID string) (*types.Result, error)
	BulkDeleteContacts(ctx context.Context, caller types.Caller, req dto.BulkDeleteContactsRequest) (*types.Result, error)
	// GetSampleFile returns the path of the downloadable sample contacts file
	GetSampleFile(ctx context.Context) (string, error)
}

// ScheduledSMSService defines the interface for viewing scheduled messages
type ScheduledSMSService interface {
	GetScheduledSMS(ctx context.Context, caller types.Caller, id string) (*dto.ScheduledSMSResponse, error)
	ListScheduledSMS(ctx context.Context, caller types.Caller) (*dto.ListScheduledSMSResponse, error)
}

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}
