package router

import (
	"log/slog"
	"sync"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/core/state"
)

// Gate returns the page a session may occupy when it asks for page.
// Authenticated sessions are sent from public pages to the dashboard,
// anonymous sessions from private pages to the landing page.
func Gate(authenticated bool, page domain.Page) domain.Page {
	switch {
	case authenticated && page.IsPublic():
		return domain.PageDashboard
	case !authenticated && !page.IsPublic():
		return domain.PageLanding
	}
	return page
}

// InitialPage is the page shown at startup.
func InitialPage(authenticated bool) domain.Page {
	if authenticated {
		return domain.PageDashboard
	}
	return domain.PageLanding
}

// Router holds the current page and re-gates it after every navigation
// and every session change.
type Router struct {
	store  *state.Store
	logger *slog.Logger

	mu          sync.Mutex
	current     domain.Page
	unsubscribe func()
}

// NewRouter creates a router positioned on the initial page for the store's session.
func NewRouter(store *state.Store, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		store:   store,
		logger:  logger,
		current: InitialPage(store.State().Session.IsAuthenticated),
	}
}

// Start follows session changes in the store.
func (r *Router) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unsubscribe != nil {
		return
	}
	r.unsubscribe = r.store.Subscribe(func(state.State) { r.regate() })
}

// Stop detaches from the store.
func (r *Router) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

// Current returns the current page.
func (r *Router) Current() domain.Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate requests page and returns the page actually shown after gating.
func (r *Router) Navigate(page domain.Page) domain.Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	authenticated := r.store.State().Session.IsAuthenticated
	r.current = Gate(authenticated, page)
	if r.current != page {
		r.logger.Debug("Navigation redirected",
			slog.String("requested", string(page)),
			slog.String("page", string(r.current)),
		)
	}
	return r.current
}

// regate reads the session under r.mu, so the last regate to run sees the
// final session.
func (r *Router) regate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	authenticated := r.store.State().Session.IsAuthenticated
	next := Gate(authenticated, r.current)
	if next != r.current {
		r.logger.Debug("Session change moved page",
			slog.String("from", string(r.current)),
			slog.String("to", string(next)),
		)
		r.current = next
	}
}
