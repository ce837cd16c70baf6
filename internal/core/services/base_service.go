package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/core/state"
	"github.com/SscSPs/digital_khata_client/internal/middleware"
)

// Notifier raises user-visible notifications.
type Notifier interface {
	Success(message string) int64
	Error(message string) int64
	Info(message string) int64
}

// SessionStore is the part of the state store the services drive.
type SessionStore interface {
	Login(user domain.User)
	Logout()
	State() state.State
}

// Navigator moves the UI between pages.
type Navigator interface {
	Navigate(page domain.Page) domain.Page
}

// BaseService provides common functionality for all services
type BaseService struct {
	Notifier Notifier
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// fail logs err and shows message as an error notification. It returns err unchanged.
// Validation errors show their own first message instead.
func (s *BaseService) fail(ctx context.Context, err error, message string, keyvals ...any) error {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		s.GetLogger(ctx).Warn("Validation failed", slog.String("error", err.Error()))
		s.notifyError(verr.FirstMessage())
		return err
	}
	s.LogError(ctx, err, message, keyvals...)
	s.notifyError(message)
	return err
}

// succeed shows message as a success notification.
func (s *BaseService) succeed(message string) {
	if s.Notifier != nil {
		s.Notifier.Success(message)
	}
}

func (s *BaseService) notifyError(message string) {
	if s.Notifier != nil {
		s.Notifier.Error(message)
	}
}

func (s *BaseService) notifyInfo(message string) {
	if s.Notifier != nil {
		s.Notifier.Info(message)
	}
}
