package state

import (
	"encoding/json"
	"log/slog"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/core/ports/repositories"
)

// persist mirrors the outcome of a transition into durable storage.
// Failures are logged; the in-memory transition stands either way.
func persist(storage repositories.LocalStorageWriter, logger *slog.Logger, a Action, s State) {
	switch a.(type) {
	case Login:
		userJSON, err := json.Marshal(s.Session.User)
		if err != nil {
			logger.Error("Failed to encode user for storage", slog.String("error", err.Error()))
			return
		}
		setItem(storage, logger, repositories.KeyIsAuthenticated, "true")
		setItem(storage, logger, repositories.KeyUser, string(userJSON))
	case Logout:
		removeItem(storage, logger, repositories.KeyIsAuthenticated)
		removeItem(storage, logger, repositories.KeyUser)
		removeItem(storage, logger, repositories.KeySessionCookies)
	case SetTheme:
		setItem(storage, logger, repositories.KeyTheme, string(s.Theme))
	}
}

func setItem(storage repositories.LocalStorageWriter, logger *slog.Logger, key, value string) {
	if err := storage.SetItem(key, value); err != nil {
		logger.Error("Failed to write local storage", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func removeItem(storage repositories.LocalStorageWriter, logger *slog.Logger, key string) {
	if err := storage.RemoveItem(key); err != nil {
		logger.Error("Failed to remove local storage key", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// load rebuilds the durable part of the state. It reports whether a theme was stored.
// An authenticated flag without a decodable user is treated as logged out.
func load(storage repositories.LocalStorageReader, logger *slog.Logger) (State, bool) {
	s := Initial()

	if flag, _ := storage.GetItem(repositories.KeyIsAuthenticated); flag == "true" {
		if raw, ok := storage.GetItem(repositories.KeyUser); ok {
			var u *domain.User
			if err := json.Unmarshal([]byte(raw), &u); err != nil {
				logger.Warn("Discarding undecodable stored user", slog.String("error", err.Error()))
			} else if u != nil {
				s.Session = domain.Session{IsAuthenticated: true, User: u}
			}
		}
	}

	raw, ok := storage.GetItem(repositories.KeyTheme)
	if !ok {
		return s, false
	}
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		logger.Warn("Ignoring unknown stored theme", slog.String("theme", raw))
		return s, false
	}
	s.Theme = theme
	return s, true
}
