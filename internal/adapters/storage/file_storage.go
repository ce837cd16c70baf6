package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/SscSPs/digital_khata_client/internal/core/ports/repositories"
	"github.com/spf13/afero"
)

// FileStorage is durable local storage kept as a single JSON object on disk.
// Every write rewrites the file before returning.
type FileStorage struct {
	fs    afero.Fs
	path  string
	mu    sync.RWMutex
	items map[string]string
}

var _ repositories.LocalStorageFacade = (*FileStorage)(nil)

// NewFileStorage opens the storage file at path, creating its directory if needed.
// A missing file starts empty; a corrupt file is an error.
func NewFileStorage(fs afero.Fs, path string) (*FileStorage, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path cannot be empty")
	}
	dir := filepath.Dir(path)
	if exists, _ := afero.DirExists(fs, dir); !exists {
		if err := fs.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	s := &FileStorage{fs: fs, path: path, items: map[string]string{}}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read storage file %s: %w", path, err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		return nil, fmt.Errorf("failed to decode storage file %s: %w", path, err)
	}
	return s, nil
}

// NewMemoryStorage returns storage backed by an in-memory filesystem.
func NewMemoryStorage() *FileStorage {
	s, err := NewFileStorage(afero.NewMemMapFs(), "/khata/storage.json")
	if err != nil {
		panic(err)
	}
	return s
}

func (s *FileStorage) GetItem(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

func (s *FileStorage) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, existed := s.items[key]
	s.items[key] = value
	if err := s.flushLocked(); err != nil {
		if existed {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		return err
	}
	return nil
}

func (s *FileStorage) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, existed := s.items[key]
	if !existed {
		return nil
	}
	delete(s.items, key)
	if err := s.flushLocked(); err != nil {
		s.items[key] = prev
		return err
	}
	return nil
}

// flushLocked writes the whole map to a temp file and renames it over the old one.
func (s *FileStorage) flushLocked() error {
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode storage: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}
