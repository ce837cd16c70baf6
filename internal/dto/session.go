package dto

import "github.com/SscSPs/digital_khata_client/internal/core/domain"

// LoginRequest carries the credentials entered on the login page.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest carries the fields of the signup page.
type SignupRequest struct {
	Name         string `json:"name" validate:"required"`
	BusinessName string `json:"businessName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
}

// ChangePasswordRequest carries the settings page password form.
type ChangePasswordRequest struct {
	Current    string `json:"current" validate:"required"`
	New        string `json:"new" validate:"required,min=8"`
	ConfirmNew string `json:"confirmNew" validate:"eqfield=New"`
}

// UpdateProfileRequest carries the settings page profile form.
type UpdateProfileRequest struct {
	Name         string `json:"name" validate:"required"`
	BusinessName string `json:"businessName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
}

// SessionResponse is the session part of the shell state.
type SessionResponse struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *domain.User `json:"user"`
}

// ToSessionResponse converts a domain.Session.
func ToSessionResponse(s domain.Session) SessionResponse {
	return SessionResponse{IsAuthenticated: s.IsAuthenticated, User: s.User}
}
