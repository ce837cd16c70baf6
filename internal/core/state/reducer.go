package state

import "github.com/SscSPs/digital_khata_client/internal/core/domain"

// State is the application-wide state: session, theme and live notifications.
type State struct {
	Session       domain.Session
	Theme         domain.Theme
	Notifications []domain.Notification
}

// Initial is the state used when durable storage holds nothing.
func Initial() State {
	return State{Theme: domain.ThemeLight, Notifications: []domain.Notification{}}
}

// Reduce computes the next state. It has no side effects and never mutates s.
func Reduce(s State, a Action) State {
	next := s.clone()
	switch act := a.(type) {
	case Login:
		u := act.User
		next.Session = domain.Session{IsAuthenticated: true, User: &u}
	case Logout:
		next.Session = domain.Session{}
	case SetTheme:
		next.Theme = act.Theme
	case AddNotification:
		kind := act.Kind
		if kind == "" {
			kind = domain.NotificationInfo
		}
		next.Notifications = append(next.Notifications, domain.Notification{
			ID:      act.ID,
			Message: act.Message,
			Type:    kind,
		})
	case RemoveNotification:
		kept := next.Notifications[:0]
		for _, n := range next.Notifications {
			if n.ID != act.ID {
				kept = append(kept, n)
			}
		}
		next.Notifications = kept
	}
	return next
}

// HasNotification reports whether a notification with id is live.
func (s State) HasNotification(id int64) bool {
	for _, n := range s.Notifications {
		if n.ID == id {
			return true
		}
	}
	return false
}

func (s State) clone() State {
	c := State{
		Session:       domain.Session{IsAuthenticated: s.Session.IsAuthenticated},
		Theme:         s.Theme,
		Notifications: make([]domain.Notification, len(s.Notifications)),
	}
	if s.Session.User != nil {
		u := *s.Session.User
		c.Session.User = &u
	}
	copy(c.Notifications, s.Notifications)
	return c
}
