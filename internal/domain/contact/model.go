package contact

import (
	"github.com/smsdesk/smsdesk/internal/types"
)

// Contact is a named mobile number kept by a user inside one of their groups
type Contact struct {
	// ID is the unique identifier for the contact
	ID string `db:"id" json:"id"`

	// Name is the display name of the contact
	Name string `db:"name" json:"name"`

	// Mobile is the E.164 formatted mobile number, unique per group and owner
	Mobile string `db:"mobile" json:"mobile"`

	// UserID is the owner of the contact
	UserID string `db:"user_id" json:"user_id"`

	// GroupID is the group the contact belongs to
	GroupID string `db:"group_id" json:"group_id"`

	types.BaseModel
}

// ContactWithOwner is a contact joined with its owner's identity, as shown in listings
type ContactWithOwner struct {
	Contact
	OwnerName  string `db:"owner_name" json:"owner_name"`
	OwnerEmail string `db:"owner_email" json:"owner_email"`
}

// New builds a contact owned by userID in groupID with an already normalized mobile
func New(userID, groupID, name, mobile string) *Contact {
	return &Contact{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CONTACT),
		Name:      name,
		Mobile:    mobile,
		UserID:    userID,
		GroupID:   groupID,
		BaseModel: types.GetDefaultBaseModel(),
	}
}
