package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/dto"
)

type sessionService struct {
	BaseService
	api   portssvc.AuthAPI
	store SessionStore
	nav   Navigator
}

// NewSessionService creates the session service. nav may be nil for headless use.
func NewSessionService(api portssvc.AuthAPI, store SessionStore, nav Navigator, notifier Notifier) portssvc.SessionSvcFacade {
	return &sessionService{
		BaseService: BaseService{Notifier: notifier},
		api:         api,
		store:       store,
		nav:         nav,
	}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// Login validates locally, runs the two-step backend login and records the session.
func (s *sessionService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error) {
	if err := dto.Validate(req); err != nil {
		return nil, s.fail(ctx, err, "Invalid login details")
	}

	user, err := s.api.Login(ctx, req.Email, req.Password)
	if err != nil {
		// The notification carries the error text, e.g. "Invalid email or password".
		s.LogError(ctx, err, "Login failed", slog.String("email", req.Email))
		s.notifyError(err.Error())
		return nil, err
	}

	s.store.Login(*user)
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.ID.String()))
	s.succeed("Login successful!")
	return user, nil
}

// Signup registers an account and sends the user to the login page.
func (s *sessionService) Signup(ctx context.Context, req dto.SignupRequest) error {
	if err := dto.Validate(req); err != nil {
		return s.fail(ctx, err, "Invalid signup details")
	}
	if err := s.api.Signup(ctx, req); err != nil {
		return s.fail(ctx, fmt.Errorf("signup failed: %w", err), "Failed to create account")
	}

	s.LogInfo(ctx, "Account created", slog.String("email", req.Email))
	s.succeed("Account created successfully! Please log in.")
	if s.nav != nil {
		s.nav.Navigate(domain.PageLogin)
	}
	return nil
}

// Logout always ends the local session; a backend failure is only logged.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		s.LogError(ctx, err, "Backend logout failed, clearing local session anyway")
	}
	s.store.Logout()
	s.LogInfo(ctx, "User logged out")
	return nil
}

// Refresh re-reads the profile. A rejected session logs the user out locally.
func (s *sessionService) Refresh(ctx context.Context) (*domain.User, error) {
	if !s.store.State().Session.IsAuthenticated {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.api.Profile(ctx)
	if err != nil {
		code := apperrors.StatusCodeOf(err)
		if code == http.StatusUnauthorized || code == http.StatusForbidden {
			s.LogInfo(ctx, "Backend session expired, logging out", slog.Int("status", code))
			s.store.Logout()
			return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthenticated, err)
		}
		s.LogError(ctx, err, "Failed to refresh profile")
		return nil, err
	}

	s.store.Login(*user)
	return user, nil
}

// ChangePassword checks the settings form. The backend exposes no endpoint for it yet.
func (s *sessionService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error {
	if !s.store.State().Session.IsAuthenticated {
		return apperrors.ErrUnauthenticated
	}
	if err := dto.Validate(req); err != nil {
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			if msg, ok := verr.Fields["confirmNew"]; ok {
				s.notifyError(msg)
				return err
			}
		}
		return s.fail(ctx, err, "Invalid password details")
	}
	s.succeed("Password changed successfully!")
	return nil
}

// UpdateProfile checks the settings profile form.
func (s *sessionService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) error {
	if !s.store.State().Session.IsAuthenticated {
		return apperrors.ErrUnauthenticated
	}
	if err := dto.Validate(req); err != nil {
		return s.fail(ctx, err, "Invalid profile details")
	}
	s.succeed("Profile updated successfully!")
	return nil
}
