package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.json")

	s, err := OpenFileStore(path, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Set("alpha", "1"))
	require.NoError(t, s.Set("beta", "2"))
	require.NoError(t, s.Remove("alpha"))

	reopened, err := OpenFileStore(path, zerolog.Nop())
	require.NoError(t, err)

	_, ok := reopened.Get("alpha")
	assert.False(t, ok)

	v, ok := reopened.Get("beta")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestOpenFileStoreMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	s, err := OpenFileStore(path, zerolog.Nop())
	require.NoError(t, err)

	_, ok := s.Get("anything")
	assert.False(t, ok)

	// The file is only created on the first write.
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenFileStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := OpenFileStore(path, zerolog.Nop())
	require.NoError(t, err)

	_, ok := s.Get("anything")
	assert.False(t, ok)

	// Writes still work after recovery.
	require.NoError(t, s.Set("key", "value"))
	v, ok := s.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestMemStoreRoundTrip(t *testing.T) {
	s := NewMemStore()

	require.NoError(t, s.Set("key", "value"))
	v, ok := s.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", v)

	require.NoError(t, s.Remove("key"))
	_, ok = s.Get("key")
	assert.False(t, ok)
}
