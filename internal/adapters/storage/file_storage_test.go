package storage_test

import (
	"testing"

	"github.com/SscSPs/digital_khata_client/internal/adapters/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_SurvivesReopen(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := storage.NewFileStorage(fs, "/data/khata.json")
	require.NoError(t, err)

	_, ok := s.GetItem("theme")
	assert.False(t, ok)

	require.NoError(t, s.SetItem("theme", "dark"))
	require.NoError(t, s.SetItem("isAuthenticated", "true"))
	require.NoError(t, s.RemoveItem("isAuthenticated"))
	require.NoError(t, s.RemoveItem("never-set"))

	reopened, err := storage.NewFileStorage(fs, "/data/khata.json")
	require.NoError(t, err)
	v, ok := reopened.GetItem("theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
	_, ok = reopened.GetItem("isAuthenticated")
	assert.False(t, ok)
}

func TestFileStorage_CorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/khata.json", []byte("{not json"), 0o600))

	_, err := storage.NewFileStorage(fs, "/data/khata.json")
	assert.Error(t, err)
}

func TestFileStorage_WriteFailureKeepsPreviousValue(t *testing.T) {
	base := afero.NewMemMapFs()
	s, err := storage.NewFileStorage(base, "/data/khata.json")
	require.NoError(t, err)
	require.NoError(t, s.SetItem("theme", "light"))

	ro, err := storage.NewFileStorage(afero.NewReadOnlyFs(base), "/data/khata.json")
	require.NoError(t, err)
	assert.Error(t, ro.SetItem("theme", "dark"))

	v, _ := ro.GetItem("theme")
	assert.Equal(t, "light", v)
}

func TestNewFileStorage_EmptyPath(t *testing.T) {
	_, err := storage.NewFileStorage(afero.NewMemMapFs(), "")
	assert.Error(t, err)
}
