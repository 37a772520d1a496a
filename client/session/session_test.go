package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/socialpost-go/auth"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "socialpost", "session.json"))
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := testStore(t)
	saved := &Session{
		Token: "header.payload.signature",
		User: auth.PublicProfile{
			ID:    "66f0000000000000000000aa",
			Name:  "Ada",
			Email: "ada@example.com",
		},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestStore_LoadWithoutFile(t *testing.T) {
	store := testStore(t)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestStore_LoadEmptyToken(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save(&Session{Token: ""}))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestStore_Clear(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save(&Session{Token: "tok"}))
	require.NoError(t, store.Clear())

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	// Clearing again is a no-op.
	assert.NoError(t, store.Clear())
}

func TestStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix file modes only")
	}
	store := testStore(t)
	require.NoError(t, store.Save(&Session{Token: "tok"}))

	info, err := os.Stat(store.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
