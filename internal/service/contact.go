package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/smsdesk/smsdesk/internal/api/dto"
	"github.com/smsdesk/smsdesk/internal/domain/contact"
	"github.com/smsdesk/smsdesk/internal/domain/group"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
	"github.com/smsdesk/smsdesk/internal/interfaces"
	"github.com/smsdesk/smsdesk/internal/rbac"
	"github.com/smsdesk/smsdesk/internal/types"
)

type ContactService = interfaces.ContactService

const (
	msgContactCreated  = "The contact has been created successfully."
	msgContactUpdated  = "The contact has been updated successfully."
	msgContactDeleted  = "The contact has been deleted successfully."
	msgContactsDeleted = "The contacts have been deleted successfully."
)

type contactService struct {
	ServiceParams
}

func NewContactService(params ServiceParams) ContactService {
	return &contactService{
		ServiceParams: params,
	}
}

// ContactsPath is where the contact listing of a group lives
func ContactsPath(groupID string) string {
	return fmt.Sprintf("/groups/%s/contacts", groupID)
}

// CreateContactPath is the create form of a group
func CreateContactPath(groupID string) string {
	return fmt.Sprintf("/groups/%s/contacts/create", groupID)
}

// EditContactPath is the edit form of a contact
func EditContactPath(groupID, contactID string) string {
	return fmt.Sprintf("/groups/%s/contacts/%s/edit", groupID, contactID)
}

func (s *contactService) ListContacts(ctx context.Context, caller types.Caller, groupID string) (*dto.ListContactsResponse, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	g, err := s.GroupRepo.Get(ctx, groupID)
	if err != nil {
		return nil, err
	}

	var items []*contact.ContactWithOwner
	if s.canListAll(caller) {
		items, err = s.ContactRepo.ListAll(ctx)
	} else {
		items, err = s.ContactRepo.ListForUser(ctx, caller.UserID)
	}
	if err != nil {
		return nil, err
	}

	return dto.NewListContactsResponse(g, items), nil
}

func (s *contactService) GetCreateForm(ctx context.Context, caller types.Caller, groupID string) (*dto.ContactFormResponse, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	g, err := s.GroupRepo.Get(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return &dto.ContactFormResponse{Group: g}, nil
}

func (s *contactService) GetEditForm(ctx context.Context, caller types.Caller, groupID, contactID string) (*dto.ContactFormResponse, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	g, c, err := s.resolve(ctx, groupID, contactID)
	if err != nil {
		return nil, err
	}
	return &dto.ContactFormResponse{
		Group:   g,
		Contact: &dto.ContactResponse{Contact: c},
	}, nil
}

func (s *contactService) CreateContact(ctx context.Context, caller types.Caller, groupID string, req dto.CreateContactRequest) (*types.Result, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g, err := s.GroupRepo.Get(ctx, groupID)
	if err != nil {
		return nil, err
	}

	classification, err := s.Phone.Classify(req.PhoneToClassify())
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("%s is not a valid mobile number.", req.Mobile).
			WithReportableDetails(map[string]any{"mobile": req.Mobile}).
			Mark(ierr.ErrUnparsablePhoneNumber)
	}
	if !classification.IsMobile {
		return nil, ierr.NewError("number is not a mobile number").
			WithHintf("%s is not a valid mobile number.", req.Mobile).
			WithReportableDetails(map[string]any{"mobile": req.Mobile}).
			Mark(ierr.ErrNotMobileNumber)
	}
	if classification.CountryCode != s.Phone.DefaultRegion() {
		return nil, ierr.NewError("number belongs to another country").
			WithHintf("%s is not a valid Kenyan mobile number.", req.Mobile).
			WithReportableDetails(map[string]any{
				"mobile":       req.Mobile,
				"country_code": classification.CountryCode,
			}).
			Mark(ierr.ErrWrongCountry)
	}

	mobile, err := s.Phone.Normalize(req.Mobile, s.Phone.DefaultRegion())
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("%s is not a valid mobile number.", req.Mobile).
			WithReportableDetails(map[string]any{"mobile": req.Mobile}).
			Mark(ierr.ErrInvalidPhoneNumber)
	}

	c := contact.New(caller.UserID, g.ID, req.Name, mobile)

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		exists, err := s.ContactRepo.ExistsWithMobile(ctx, g.ID, caller.UserID, mobile)
		if err != nil {
			return err
		}
		if exists {
			return duplicateMobileError(req.Mobile)
		}

		if err := s.ContactRepo.Create(ctx, c); err != nil {
			if ierr.IsAlreadyExists(err) {
				s.Logger.Debugw("unique index rejected contact", "group_id", g.ID, "error", err)
				return duplicateMobileError(req.Mobile)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created contact",
		"contact_id", c.ID,
		"group_id", g.ID,
		"user_id", caller.UserID,
	)

	return types.NewSuccessResult(msgContactCreated, ContactsPath(g.ID), &dto.ContactResponse{Contact: c}), nil
}

func (s *contactService) UpdateContact(ctx context.Context, caller types.Caller, groupID, contactID string, req dto.UpdateContactRequest) (*types.Result, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g, c, err := s.resolve(ctx, groupID, contactID)
	if err != nil {
		return nil, err
	}

	mobile, err := s.Phone.Normalize(req.Mobile, s.Phone.DefaultRegion())
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("%s is not a valid mobile number.", req.Mobile).
			WithReportableDetails(map[string]any{"mobile": req.Mobile}).
			Mark(ierr.ErrInvalidPhoneNumber)
	}

	c.Name = req.Name
	c.Mobile = mobile
	c.UserID = caller.UserID
	c.GroupID = g.ID
	c.UpdatedAt = time.Now().UTC()

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.ContactRepo.Update(ctx, c); err != nil {
			if ierr.IsAlreadyExists(err) {
				return duplicateMobileError(req.Mobile)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("updated contact", "contact_id", c.ID, "group_id", g.ID, "user_id", caller.UserID)

	return types.NewSuccessResult(msgContactUpdated, ContactsPath(g.ID), &dto.ContactResponse{Contact: c}), nil
}

func (s *contactService) DeleteContact(ctx context.Context, caller types.Caller, groupID, contactID string) (*types.Result, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	g, c, err := s.resolve(ctx, groupID, contactID)
	if err != nil {
		return nil, err
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		return s.ContactRepo.Delete(ctx, c.ID)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("deleted contact", "contact_id", c.ID, "user_id", caller.UserID)

	return types.NewSuccessResult(msgContactDeleted, ContactsPath(g.ID), nil), nil
}

// BulkDeleteContacts removes every listed contact. Ownership is only enforced
// for non-admin callers when contacts.scope_bulk_delete is on.
func (s *contactService) BulkDeleteContacts(ctx context.Context, caller types.Caller, req dto.BulkDeleteContactsRequest) (*types.Result, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	ids := lo.Uniq(lo.Compact(req.IDs))
	scoped := s.Config.Contacts.ScopeBulkDelete &&
		!s.RBAC.HasPermission(caller.Roles, rbac.EntityContact, rbac.ActionDeleteAny)

	var deleted int64
	if len(ids) > 0 {
		err := s.DB.WithTx(ctx, func(ctx context.Context) error {
			var err error
			if scoped {
				deleted, err = s.ContactRepo.DeleteByIDsForUser(ctx, ids, caller.UserID)
			} else {
				deleted, err = s.ContactRepo.DeleteByIDs(ctx, ids)
			}
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	s.Logger.Infow("bulk deleted contacts",
		"requested", len(ids),
		"deleted", deleted,
		"scoped", scoped,
		"user_id", caller.UserID,
	)

	result := types.NewSuccessResult(msgContactsDeleted, types.RedirectBack, nil)
	result.Details = map[string]any{
		"requested": len(ids),
		"deleted":   deleted,
	}
	return result, nil
}

func (s *contactService) GetSampleFile(ctx context.Context) (string, error) {
	path := s.Config.Contacts.SampleFilePath
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ierr.NewError("sample file missing").
			WithHint("The sample file is not available.").
			WithReportableDetails(map[string]any{"path": path}).
			Mark(ierr.ErrNotFound)
	}
	return path, nil
}

func (s *contactService) canListAll(caller types.Caller) bool {
	return s.RBAC.HasPermission(caller.Roles, rbac.EntityContact, rbac.ActionListAll)
}

func (s *contactService) resolve(ctx context.Context, groupID, contactID string) (*group.Group, *contact.Contact, error) {
	g, err := s.GroupRepo.Get(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	c, err := s.ContactRepo.Get(ctx, contactID)
	if err != nil {
		return nil, nil, err
	}
	return g, c, nil
}

func duplicateMobileError(mobile string) error {
	return ierr.NewError("mobile already exists in group").
		WithHintf("%s already exists in this group.", mobile).
		WithReportableDetails(map[string]any{"mobile": mobile}).
		Mark(ierr.ErrDuplicateMobile)
}
