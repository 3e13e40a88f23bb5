package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/pkg/jwt"
)

type authService struct {
	cfg    config.AuthConfig
	tokens *jwt.Manager
}

// NewAuthService creates the service for the single configured admin identity.
func NewAuthService(cfg config.AuthConfig, tokens *jwt.Manager) auth.Service {
	return &authService{cfg: cfg, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", auth.ErrInvalidCredentials
	}

	// Exactly one identity is recognized. Username and password checks both
	// fold into the same generic error.
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUsername)) == 1

	if !s.passwordMatches(req.Password) || !usernameOK {
		return "", auth.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(s.cfg.AdminUsername)
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	return token, nil
}

// passwordMatches prefers the bcrypt hash when configured; the plain-text
// comparison is a development convenience.
func (s *authService) passwordMatches(password string) bool {
	if s.cfg.AdminPasswordHash != "" {
		// Constant-time comparison
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
}
