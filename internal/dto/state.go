package dto

import "github.com/SscSPs/digital_khata_client/internal/core/domain"

// StateResponse is the full view of the application state served to the UI.
type StateResponse struct {
	Session       SessionResponse       `json:"session"`
	Theme         domain.Theme          `json:"theme"`
	RootClass     []string              `json:"rootClass"`
	Notifications []domain.Notification `json:"notifications"`
	CurrentPage   domain.Page           `json:"currentPage"`
}

// ThemeRequest selects a theme.
type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// NotificationRequest raises a notification.
type NotificationRequest struct {
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"omitempty,oneof=success error info"`
}

// PageRequest asks the router to navigate.
type PageRequest struct {
	Page string `json:"page" validate:"required"`
}

// PageResponse reports the page after gating.
type PageResponse struct {
	CurrentPage domain.Page `json:"currentPage"`
}
