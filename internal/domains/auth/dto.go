package auth

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LoginRequest carries the admin credential pair.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// LoginResponse is the wire shape the admin panel stores the token from.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
