package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRequestFailed indicates that the backend answered with a non-success status code.
var ErrRequestFailed = errors.New("API request failed")

// ErrInvalidCredentials is returned when the backend rejects a login attempt.
// The message is shown to the user as is.
var ErrInvalidCredentials = errors.New("Invalid email or password")

// ErrUnauthenticated indicates that an operation needs a logged-in session.
var ErrUnauthenticated = errors.New("not authenticated")

// ErrNotConfigured indicates that an optional component (e.g. the offline queue) is disabled.
var ErrNotConfigured = errors.New("component not configured")

// ErrSyncInProgress is returned when a sync is requested while another one is still running.
var ErrSyncInProgress = errors.New("sync already in progress")

// RequestFailedError carries the status of a failed backend call.
type RequestFailedError struct {
	StatusCode int
	StatusText string
}

// NewRequestFailedError builds a RequestFailedError from a status code and the reason
// phrase the server sent (e.g. "404 Not Found" or just "Not Found").
func NewRequestFailedError(statusCode int, status string) *RequestFailedError {
	text := strings.TrimSpace(strings.TrimPrefix(status, fmt.Sprintf("%d", statusCode)))
	return &RequestFailedError{StatusCode: statusCode, StatusText: text}
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("%s: %d %s", ErrRequestFailed.Error(), e.StatusCode, e.StatusText)
}

// Unwrap lets errors.Is(err, ErrRequestFailed) match.
func (e *RequestFailedError) Unwrap() error {
	return ErrRequestFailed
}

// StatusCodeOf returns the backend status carried by err, or 0 when err is not a RequestFailedError.
func StatusCodeOf(err error) int {
	var rf *RequestFailedError
	if errors.As(err, &rf) {
		return rf.StatusCode
	}
	return 0
}

// ValidationError describes local validation failures per field.
// It is raised before any network call.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError with a single field message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FirstMessage returns the message of the alphabetically first field, used for toasts.
func (e *ValidationError) FirstMessage() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ErrValidation.Error()
	}
	sort.Strings(keys)
	return e.Fields[keys[0]]
}
