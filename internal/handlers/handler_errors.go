package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP responses. fallback is shown for
// errors that carry no user-facing text.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromContext(c)

	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.FirstMessage(), "fields": verr.Fields})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		logger.Warn("Invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidCredentials.Error()})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in first"})
	case errors.Is(err, apperrors.ErrSyncInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "Offline sync already in progress"})
	case errors.Is(err, apperrors.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Offline queue is not configured"})
	case errors.Is(err, apperrors.ErrRequestFailed):
		status := apperrors.StatusCodeOf(err)
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		logger.Warn("Backend request failed", slog.Int("status", status), slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback, "detail": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// bindJSON binds the body into req and answers 400 on malformed input.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}
