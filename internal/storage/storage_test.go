package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayk812/apnadairy/internal/port"
	"github.com/nikolayk812/apnadairy/internal/storage"
)

var (
	_ port.CartStorage = (*storage.Memory)(nil)
	_ port.CartStorage = (*storage.File)(nil)
)

func TestMemory(t *testing.T) {
	mem := storage.NewMemory()

	_, ok, err := mem.Get("cartItems")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mem.Set("cartItems", "[]"))
	require.NoError(t, mem.Set("cartItems", `[{"quantity":2}]`))

	value, ok, err := mem.Get("cartItems")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"quantity":2}]`, value)
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	file, err := storage.NewFile(path)
	require.NoError(t, err)

	// a missing file reads as an empty store
	_, ok, err := file.Get("cartItems")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, file.Set("cartItems", "[]"))
	require.NoError(t, file.Set("theme", "dark"))

	value, ok, err := file.Get("cartItems")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)
}

func TestFileSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	first, err := storage.NewFile(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("cartItems", `[{"quantity":5}]`))

	second, err := storage.NewFile(path)
	require.NoError(t, err)

	value, ok, err := second.Get("cartItems")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"quantity":5}]`, value)
}

func TestFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	file, err := storage.NewFile(path)
	require.NoError(t, err)

	_, _, err = file.Get("cartItems")
	require.Error(t, err)

	err = file.Set("cartItems", "[]")
	require.Error(t, err)
}

func TestFileEmptyPath(t *testing.T) {
	_, err := storage.NewFile("")
	require.Error(t, err)
}
