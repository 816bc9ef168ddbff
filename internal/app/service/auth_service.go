package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/common"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/common/security"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/domain/repository"
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Login verifies credentials and mints an access/refresh token pair.
// Unknown user, wrong password, and deactivated account all surface the same
// generic unauthorized error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenPair, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.Errorf("all fields are required: %w", common.ErrValidation)
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.Active || !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrUnauthorized
	}

	access, err := security.GenerateAccessToken(user.ID, user.Username, user.Roles)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := security.GenerateRefreshToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh validates a refresh token, re-reads the user so revoked or
// deactivated accounts stop refreshing, and mints a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	username, err := security.UsernameFromRefreshToken(refreshToken)
	if err != nil {
		return "", common.ErrUnauthorized
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUnauthorized
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}
	if !user.Active {
		return "", common.ErrUnauthorized
	}

	access, err := security.GenerateAccessToken(user.ID, user.Username, user.Roles)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return access, nil
}
