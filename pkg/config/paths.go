package config

import (
	"os"
	"path/filepath"
)

// defaultStoragePath places local storage in the user config directory,
// falling back to the working directory.
func defaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".khata", "storage.json")
	}
	return filepath.Join(dir, "digital_khata", "storage.json")
}
