package services

import (
	"context"
	"fmt"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

type AuthService struct {
	owner  *domain.Owner
	tokens *TokenService
}

func NewAuthService(owner *domain.Owner, tokens *TokenService) *AuthService {
	return &AuthService{
		owner:  owner,
		tokens: tokens,
	}
}

// Enabled reports whether an owner password is configured.
func (s *AuthService) Enabled() bool {
	return s.owner != nil && s.owner.PasswordHash != "" && s.tokens != nil
}

// Login checks the owner password and issues a token for the owner.
func (s *AuthService) Login(_ context.Context, password string) (string, error) {
	if !s.Enabled() {
		return "", domain.ErrAuthDisabled
	}

	if err := s.owner.CheckPassword(password); err != nil {
		return "", err
	}

	token, err := s.tokens.GenerateToken(s.owner.Name)
	if err != nil {
		return "", fmt.Errorf("auth service: %w", err)
	}
	return token, nil
}
