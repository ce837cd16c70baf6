package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	"github.com/SscSPs/digital_khata_client/internal/core/ports/repositories"
	"golang.org/x/net/publicsuffix"
)

// storedCookie is the persisted form of a session cookie.
type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SessionJar is a cookie jar whose backend cookies are mirrored into durable
// storage, so separate runs of the client share one backend session.
type SessionJar struct {
	mu      sync.RWMutex
	jar     *cookiejar.Jar
	origin  *url.URL
	storage repositories.LocalStorageFacade
	logger  *slog.Logger
}

var _ http.CookieJar = (*SessionJar)(nil)

// NewSessionJar creates a jar for origin and restores any stored cookies.
func NewSessionJar(origin *url.URL, storage repositories.LocalStorageFacade, logger *slog.Logger) (*SessionJar, error) {
	jar, err := newCookieJar()
	if err != nil {
		return nil, err
	}
	j := &SessionJar{jar: jar, origin: origin, storage: storage, logger: logger}
	j.restore()
	return j, nil
}

func newCookieJar() (*cookiejar.Jar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return jar, nil
}

func (j *SessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.RLock()
	jar := j.jar
	j.mu.RUnlock()

	jar.SetCookies(u, cookies)
	j.save()
}

func (j *SessionJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.jar.Cookies(u)
}

// Cookie returns the value of the named cookie sent to the backend origin.
func (j *SessionJar) Cookie(name string) (string, bool) {
	for _, c := range j.Cookies(j.origin) {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// Clear drops every cookie and the stored copy.
func (j *SessionJar) Clear() {
	jar, err := newCookieJar()
	if err != nil {
		j.logger.Error("Failed to reset cookie jar", slog.String("error", err.Error()))
		return
	}
	j.mu.Lock()
	j.jar = jar
	j.mu.Unlock()

	if err := j.storage.RemoveItem(repositories.KeySessionCookies); err != nil {
		j.logger.Error("Failed to remove stored session cookies", slog.String("error", err.Error()))
	}
}

func (j *SessionJar) save() {
	cookies := j.Cookies(j.origin)
	stored := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		stored = append(stored, storedCookie{Name: c.Name, Value: c.Value})
	}
	data, err := json.Marshal(stored)
	if err != nil {
		j.logger.Error("Failed to encode session cookies", slog.String("error", err.Error()))
		return
	}
	if err := j.storage.SetItem(repositories.KeySessionCookies, string(data)); err != nil {
		j.logger.Error("Failed to store session cookies", slog.String("error", err.Error()))
	}
}

func (j *SessionJar) restore() {
	raw, ok := j.storage.GetItem(repositories.KeySessionCookies)
	if !ok || raw == "" {
		return
	}
	var stored []storedCookie
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		j.logger.Warn("Discarding undecodable stored session cookies", slog.String("error", err.Error()))
		return
	}
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
	}
	j.jar.SetCookies(j.origin, cookies)
}
