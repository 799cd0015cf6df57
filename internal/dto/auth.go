package dto

import (
	"github.com/lilad25/intranet-portal/internal/core/domain"
)

// RegisterRequest is the self-service registration form.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

// RegisterResponse reports the created (unverified) account and where the
// client should navigate next.
type RegisterResponse struct {
	Account  AccountResponse `json:"account"`
	Redirect string          `json:"redirect"`
	Notice   *Notification   `json:"notice,omitempty"`
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the bearer token plus the authenticated account.
type LoginResponse struct {
	Token    string          `json:"token"`
	Account  AccountResponse `json:"account"`
	Redirect string          `json:"redirect"`
	Notice   *Notification   `json:"notice,omitempty"`
}

// SessionResponse describes the restored session, if any.
type SessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Account       *AccountResponse `json:"account,omitempty"`
}

// VerifyEmailResponse is returned after the simulated e-mail verification.
type VerifyEmailResponse struct {
	Redirect string        `json:"redirect"`
	Notice   *Notification `json:"notice,omitempty"`
}

// LogoutResponse redirects home after the session marker is cleared.
type LogoutResponse struct {
	Redirect string        `json:"redirect"`
	Notice   *Notification `json:"notice,omitempty"`
}

// ProfileResponse is the self-service profile view.
type ProfileResponse struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// ToProfileResponse maps an account to its profile view.
func ToProfileResponse(a *domain.Account) ProfileResponse {
	return ProfileResponse{
		Name:  a.FullName(),
		Email: a.Email,
		Role:  a.Role,
	}
}
