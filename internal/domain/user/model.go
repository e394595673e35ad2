package user

import (
	"strings"

	"github.com/smsdesk/smsdesk/internal/types"
)

type User struct {
	ID           string         `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Email        string         `db:"email" json:"email"`
	Role         types.UserRole `db:"role" json:"role"`
	PasswordHash string         `db:"password_hash" json:"-"`
	types.BaseModel
}

func NewUser(name, email string, role types.UserRole, passwordHash string) *User {
	return &User{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER),
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Role:         role,
		PasswordHash: passwordHash,
		BaseModel:    types.GetDefaultBaseModel(),
	}
}

// Roles returns the RBAC roles the user carries
func (u *User) Roles() []string {
	if u.Role == "" {
		return []string{types.UserRoleUser.String()}
	}
	return []string{u.Role.String()}
}

func (u *User) IsAdmin() bool {
	return u.Role == types.UserRoleAdmin
}
