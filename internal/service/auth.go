package service

import (
	"context"

	"github.com/smsdesk/smsdesk/internal/api/dto"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
	"github.com/smsdesk/smsdesk/internal/interfaces"
)

type AuthService = interfaces.AuthService

type authService struct {
	ServiceParams
}

func NewAuthService(params ServiceParams) AuthService {
	return &authService{
		ServiceParams: params,
	}
}

// Login authenticates a user and returns an auth token
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.UserRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.NewError("unknown email").
				WithHint("Invalid email or password").
				Mark(ierr.ErrPermissionDenied)
		}
		return nil, err
	}

	if err := s.Auth.ComparePassword(user.PasswordHash, req.Password); err != nil {
		s.Logger.Debugw("password mismatch", "user_id", user.ID)
		return nil, err
	}

	token, err := s.Auth.GenerateToken(user.ID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to authenticate").
			Mark(ierr.ErrSystem)
	}

	return &dto.AuthResponse{
		Token:  token,
		UserID: user.ID,
		Role:   user.Role.String(),
	}, nil
}
