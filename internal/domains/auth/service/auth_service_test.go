package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/pkg/jwt"
)

func newService(t *testing.T, cfg config.AuthConfig) auth.Service {
	t.Helper()
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "unit-test-secret"
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = time.Hour
	}
	return NewAuthService(cfg, jwt.NewManager(cfg.JWTSecret, cfg.TokenTTL))
}

func TestLogin_PlainPassword(t *testing.T) {
	svc := newService(t, config.AuthConfig{
		AdminUsername: "admin",
		AdminPassword: "admin123",
	})

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "correct credentials", username: "admin", password: "admin123"},
		{name: "wrong password", username: "admin", password: "wrong", wantErr: auth.ErrInvalidCredentials},
		{name: "unknown user", username: "root", password: "admin123", wantErr: auth.ErrInvalidCredentials},
		{name: "empty password", username: "admin", password: "", wantErr: auth.ErrInvalidCredentials},
		{name: "empty username", username: "", password: "admin123", wantErr: auth.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Login(context.Background(), auth.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestLogin_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-Pass"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := newService(t, config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	})

	_, err = svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "s3cret-Pass"})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "not-it"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_HashTakesPrecedenceOverPlain(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := newService(t, config.AuthConfig{
		AdminUsername:     "admin",
		AdminPassword:     "plain-pass",
		AdminPasswordHash: string(hash),
	})

	// The plain password is ignored once a hash is configured
	_, err = svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "plain-pass"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "hashed-pass"})
	assert.NoError(t, err)
}

func TestLogin_TokenIsValidForConfiguredTTL(t *testing.T) {
	manager := jwt.NewManager("unit-test-secret", time.Hour)
	svc := NewAuthService(config.AuthConfig{
		AdminUsername: "admin",
		AdminPassword: "admin123",
		JWTSecret:     "unit-test-secret",
		TokenTTL:      time.Hour,
	}, manager)

	token, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "admin", claims.Subject)
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)
}
