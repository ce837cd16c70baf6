package state

import (
	"sort"
	"sync"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
)

// ThemeApplier makes the active theme visible to the UI.
type ThemeApplier interface {
	ApplyTheme(theme domain.Theme)
}

// PreferenceSource reports the ambient colour-scheme preference.
type PreferenceSource interface {
	PrefersDark() bool
}

// StaticPreference is a preference fixed at startup (from configuration).
type StaticPreference bool

func (p StaticPreference) PrefersDark() bool { return bool(p) }

// DocumentRoot tracks the class list of the UI's root element.
// The shell exposes it so the browser can mirror it onto <html>.
type DocumentRoot struct {
	mu      sync.RWMutex
	classes map[string]struct{}
}

// NewDocumentRoot creates an empty class list.
func NewDocumentRoot() *DocumentRoot {
	return &DocumentRoot{classes: map[string]struct{}{}}
}

// ApplyTheme adds the dark class for the dark theme and removes it otherwise.
func (d *DocumentRoot) ApplyTheme(theme domain.Theme) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if theme == domain.ThemeDark {
		d.classes[domain.DarkClass] = struct{}{}
		return
	}
	delete(d.classes, domain.DarkClass)
}

// Classes returns the class list in sorted order.
func (d *DocumentRoot) Classes() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.classes))
	for c := range d.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// HasClass reports whether class is set.
func (d *DocumentRoot) HasClass(class string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.classes[class]
	return ok
}
