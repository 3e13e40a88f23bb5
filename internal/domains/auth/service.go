package auth

import "context"

// Service gates admin-panel access behind the single configured identity.
type Service interface {
	// Login validates the credential pair and returns a signed session token.
	// Any mismatch returns ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (string, error)
}
