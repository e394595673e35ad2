package auth

import (
	"context"

	"github.com/smsdesk/smsdesk/internal/config"
)

// Claims are the identity fields carried by an issued token
type Claims struct {
	UserID string
}

type Provider interface {
	// HashPassword returns the bcrypt hash stored for a user
	HashPassword(password string) (string, error)
	// ComparePassword checks a plain password against a stored hash
	ComparePassword(hash, password string) error
	// GenerateToken issues a signed token for the user
	GenerateToken(userID string) (string, error)
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

func NewProvider(cfg *config.Configuration) Provider {
	return NewJWTAuth(cfg)
}
