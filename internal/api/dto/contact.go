package dto

import (
	"strings"

	"github.com/smsdesk/smsdesk/internal/domain/contact"
	"github.com/smsdesk/smsdesk/internal/domain/group"
	"github.com/smsdesk/smsdesk/internal/validator"
)

type CreateContactRequest struct {
	Name   string `json:"name" form:"name" validate:"required,max=255"`
	Mobile string `json:"mobile" form:"mobile" validate:"required,max=32"`
	// FullPhone is the international form produced by the phone input widget, when present
	FullPhone string `json:"full_phone,omitempty" form:"full_phone" validate:"omitempty,max=32"`
}

func (r *CreateContactRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Mobile = strings.TrimSpace(r.Mobile)
	r.FullPhone = strings.TrimSpace(r.FullPhone)
	return validator.ValidateRequest(r)
}

// PhoneToClassify is the number the create flow inspects for type and country
func (r *CreateContactRequest) PhoneToClassify() string {
	if r.FullPhone != "" {
		return r.FullPhone
	}
	return r.Mobile
}

type UpdateContactRequest struct {
	Name   string `json:"name" form:"name" validate:"required,max=255"`
	Mobile string `json:"mobile" form:"mobile" validate:"required,max=32"`
}

func (r *UpdateContactRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Mobile = strings.TrimSpace(r.Mobile)
	return validator.ValidateRequest(r)
}

// BulkDeleteContactsRequest carries the ids ticked in the listing
type BulkDeleteContactsRequest struct {
	IDs []string `json:"rowCheck" form:"rowCheck"`
}

type ContactResponse struct {
	*contact.Contact
}

type ContactWithOwnerResponse struct {
	*contact.ContactWithOwner
}

// ListContactsResponse is the contact listing of a group page
type ListContactsResponse struct {
	Group    *group.Group                `json:"group"`
	Contacts []*ContactWithOwnerResponse `json:"contacts"`
	Total    int                         `json:"total"`
}

func NewListContactsResponse(g *group.Group, items []*contact.ContactWithOwner) *ListContactsResponse {
	contacts := make([]*ContactWithOwnerResponse, 0, len(items))
	for _, item := range items {
		contacts = append(contacts, &ContactWithOwnerResponse{ContactWithOwner: item})
	}
	return &ListContactsResponse{
		Group:    g,
		Contacts: contacts,
		Total:    len(contacts),
	}
}

// ContactFormResponse carries what the create and edit forms are rendered from
type ContactFormResponse struct {
	Group   *group.Group     `json:"group"`
	Contact *ContactResponse `json:"contact,omitempty"`
}
