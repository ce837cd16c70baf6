package domain

import "fmt"

// NotificationKind selects how a notification is presented.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

// Notification is a transient, auto-expiring, user-dismissable message.
type Notification struct {
	ID      int64            `json:"id"`
	Message string           `json:"message"`
	Type    NotificationKind `json:"type"`
}

// ParseNotificationKind converts a string into a NotificationKind.
// An empty string defaults to info.
func ParseNotificationKind(s string) (NotificationKind, error) {
	switch NotificationKind(s) {
	case "":
		return NotificationInfo, nil
	case NotificationSuccess, NotificationError, NotificationInfo:
		return NotificationKind(s), nil
	}
	return "", fmt.Errorf("unknown notification type %q", s)
}
