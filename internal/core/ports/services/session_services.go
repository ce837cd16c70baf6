package services

import (
	"context"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/dto"
)

// SessionSvcFacade drives authentication and the settings forms.
type SessionSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error)
	Signup(ctx context.Context, req dto.SignupRequest) error
	Logout(ctx context.Context) error
	// Refresh re-reads the profile of the current session.
	Refresh(ctx context.Context) (*domain.User, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) error
}
