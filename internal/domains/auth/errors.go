package auth

import "errors"

// ErrInvalidCredentials is the single failure the login path exposes.
// Unknown user and wrong password are indistinguishable on purpose, so the
// endpoint cannot be used for username enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")
