package repositories

// Keys used in durable local storage.
const (
	KeyIsAuthenticated = "isAuthenticated"
	KeyUser            = "user"
	KeyTheme           = "theme"
	KeySessionCookies  = "sessionCookies"
)

// LocalStorageReader reads values from durable local storage.
type LocalStorageReader interface {
	// GetItem returns the value stored under key and whether it was present.
	GetItem(key string) (string, bool)
}

// LocalStorageWriter writes values to durable local storage.
// Writes are synchronous: once a call returns the value survives a restart.
type LocalStorageWriter interface {
	// SetItem stores value under key, replacing any previous value.
	SetItem(key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(key string) error
}

// LocalStorageFacade combines read and write access to durable local storage.
type LocalStorageFacade interface {
	LocalStorageReader
	LocalStorageWriter
}
