package auth

import (
	"github.com/lizbakes/cakeapp-backend/internal/users"
)

// RegisterRequest captures the payload required to create an account.
type RegisterRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Phone    string  `json:"phone" validate:"required"`
	Address  *string `json:"address,omitempty"`
}

// VerifyRequest carries the email/code pair submitted for verification.
type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  int    `json:"code" validate:"required"`
}

// ResendRequest asks for a fresh verification code.
type ResendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// MessageResponse is the acknowledgment shape returned by the
// register/verify/resend endpoints. It never exposes the user record.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse contains the token and profile produced by a successful login.
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	User        *users.UserDTO `json:"user"`
}
