package toast

import (
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/core/state"
	"github.com/SscSPs/digital_khata_client/internal/metrics"
	"github.com/SscSPs/digital_khata_client/internal/utils/clock"
)

// DefaultTimeout is how long a notification stays up unless dismissed.
const DefaultTimeout = 5 * time.Second

// Toaster gives every live notification its own expiry timer.
// It follows the store, so notifications raised from any entry point expire.
type Toaster struct {
	store   *state.Store
	clock   clock.Clock
	timeout time.Duration
	logger  *slog.Logger

	mu          sync.Mutex
	timers      map[int64]clock.Timer
	unsubscribe func()
}

// NewToaster creates a toaster. A non-positive timeout selects DefaultTimeout.
func NewToaster(store *state.Store, clk clock.Clock, timeout time.Duration, logger *slog.Logger) *Toaster {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if clk == nil {
		clk = clock.Real{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Toaster{
		store:   store,
		clock:   clk,
		timeout: timeout,
		logger:  logger,
		timers:  map[int64]clock.Timer{},
	}
}

// Start begins following the store and arms timers for notifications already present.
func (t *Toaster) Start() {
	t.mu.Lock()
	if t.unsubscribe != nil {
		t.mu.Unlock()
		return
	}
	t.unsubscribe = t.store.Subscribe(func(state.State) { t.reconcile() })
	t.mu.Unlock()

	t.reconcile()
}

// Stop detaches from the store and cancels every pending timer.
func (t *Toaster) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
}

// Show raises a notification and returns its id.
func (t *Toaster) Show(message string, kind domain.NotificationKind) int64 {
	return t.store.Notify(message, kind)
}

// Success raises a success notification.
func (t *Toaster) Success(message string) int64 {
	return t.Show(message, domain.NotificationSuccess)
}

// Error raises an error notification.
func (t *Toaster) Error(message string) int64 {
	return t.Show(message, domain.NotificationError)
}

// Info raises an info notification.
func (t *Toaster) Info(message string) int64 {
	return t.Show(message, domain.NotificationInfo)
}

// Dismiss removes a notification before its timer fires. Unknown ids are ignored.
func (t *Toaster) Dismiss(id int64) {
	t.store.RemoveNotification(id)
}

// Pending returns the number of armed timers.
func (t *Toaster) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.timers)
}

// reconcile arms a timer for every new notification and cancels timers
// whose notification is gone. The store is read under t.mu so a late
// reconcile never acts on an older snapshot than an earlier one.
func (t *Toaster) reconcile() {
	t.mu.Lock()
	defer t.mu.Unlock()
	current := t.store.State()

	live := make(map[int64]struct{}, len(current.Notifications))
	for _, n := range current.Notifications {
		live[n.ID] = struct{}{}
		if _, armed := t.timers[n.ID]; armed {
			continue
		}
		id := n.ID
		t.timers[id] = t.clock.AfterFunc(t.timeout, func() { t.expire(id) })
		metrics.RecordNotification(string(n.Type))
		t.logger.Debug("Notification shown", slog.Int64("id", id), slog.String("type", string(n.Type)))
	}

	for id, timer := range t.timers {
		if _, ok := live[id]; !ok {
			timer.Stop()
			delete(t.timers, id)
		}
	}
}

func (t *Toaster) expire(id int64) {
	t.mu.Lock()
	delete(t.timers, id)
	t.mu.Unlock()

	t.store.RemoveNotification(id)
}
