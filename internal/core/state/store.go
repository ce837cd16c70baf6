package state

import (
	"log/slog"
	"sync"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/core/ports/repositories"
)

// Listener is called with the new state after every transition.
type Listener func(State)

// Store owns the application state. All mutations go through Dispatch, which
// reduces, persists and applies the theme under one lock, then notifies listeners.
type Store struct {
	mu          sync.Mutex
	state       State
	themeStored bool
	nextID      int64

	storage repositories.LocalStorageFacade
	applier ThemeApplier
	logger  *slog.Logger

	subMu     sync.RWMutex
	listeners map[int]Listener
	subSeq    int
}

// NewStore rehydrates state from storage. A stored theme is applied immediately;
// otherwise the theme stays light until Mount resolves the ambient preference.
func NewStore(storage repositories.LocalStorageFacade, applier ThemeApplier, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		storage:   storage,
		applier:   applier,
		logger:    logger,
		listeners: map[int]Listener{},
	}
	s.state, s.themeStored = load(storage, logger)
	if s.themeStored {
		s.applier.ApplyTheme(s.state.Theme)
	}
	logger.Debug("State rehydrated",
		slog.Bool("authenticated", s.state.Session.IsAuthenticated),
		slog.String("theme", string(s.state.Theme)),
	)
	return s
}

// Mount finishes startup: without a stored theme the ambient preference decides,
// and the result is persisted like any other theme change.
func (s *Store) Mount(pref PreferenceSource) {
	s.mu.Lock()
	stored := s.themeStored
	current := s.state.Theme
	s.mu.Unlock()

	if stored {
		s.applier.ApplyTheme(current)
		return
	}
	theme := domain.ThemeLight
	if pref != nil && pref.PrefersDark() {
		theme = domain.ThemeDark
	}
	s.Dispatch(SetTheme{Theme: theme})
}

// Dispatch applies one transition and returns the resulting state.
func (s *Store) Dispatch(a Action) State {
	return s.apply(func(State) Action { return a })
}

// apply derives the action from the current state under the store lock.
func (s *Store) apply(build func(current State) Action) State {
	s.mu.Lock()
	a := build(s.state)
	if add, ok := a.(AddNotification); ok {
		if add.ID == 0 {
			s.nextID++
			add.ID = s.nextID
		} else if add.ID > s.nextID {
			s.nextID = add.ID
		}
		a = add
	}

	next := Reduce(s.state, a)
	s.state = next
	persist(s.storage, s.logger, a, next)
	if t, ok := a.(SetTheme); ok {
		s.themeStored = true
		s.applier.ApplyTheme(t.Theme)
	}
	snapshot := next.clone()
	s.mu.Unlock()

	s.logger.Debug("State transition", slog.String("action", a.actionName()))
	s.notify(snapshot)
	return snapshot
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers a listener and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subSeq++
	id := s.subSeq
	s.listeners[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) notify(st State) {
	s.subMu.RLock()
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.subMu.RUnlock()

	for _, fn := range fns {
		fn(st)
	}
}

// Login records an authenticated session for user.
func (s *Store) Login(user domain.User) {
	s.Dispatch(Login{User: user})
}

// Logout clears the session.
func (s *Store) Logout() {
	s.Dispatch(Logout{})
}

// SetTheme selects theme.
func (s *Store) SetTheme(theme domain.Theme) {
	s.Dispatch(SetTheme{Theme: theme})
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *Store) ToggleTheme() domain.Theme {
	st := s.apply(func(current State) Action {
		return SetTheme{Theme: current.Theme.Toggled()}
	})
	return st.Theme
}

// Notify raises a notification and returns its id.
func (s *Store) Notify(message string, kind domain.NotificationKind) int64 {
	st := s.Dispatch(AddNotification{Message: message, Kind: kind})
	return st.Notifications[len(st.Notifications)-1].ID
}

// RemoveNotification dismisses a notification. Unknown ids are ignored.
func (s *Store) RemoveNotification(id int64) {
	s.Dispatch(RemoveNotification{ID: id})
}
