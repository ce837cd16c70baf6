package state

import "github.com/SscSPs/digital_khata_client/internal/core/domain"

// Action is one of the five state transitions. The set is closed.
type Action interface {
	actionName() string
}

// Login marks the session authenticated for User.
type Login struct {
	User domain.User
}

// Logout clears the session.
type Logout struct{}

// SetTheme selects the display theme.
type SetTheme struct {
	Theme domain.Theme
}

// AddNotification appends a notification. A zero ID is replaced by the store's next id.
type AddNotification struct {
	ID      int64
	Message string
	Kind    domain.NotificationKind
}

// RemoveNotification deletes the notification with ID, if present.
type RemoveNotification struct {
	ID int64
}

func (Login) actionName() string              { return "login" }
func (Logout) actionName() string             { return "logout" }
func (SetTheme) actionName() string           { return "set_theme" }
func (AddNotification) actionName() string    { return "add_notification" }
func (RemoveNotification) actionName() string { return "remove_notification" }
