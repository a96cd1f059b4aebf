package credstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredentials() Credentials {
	name := "Anna Larsson"
	return Credentials{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-xyz",
		ExpiresAt:    time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
		User: User{
			ID:       "u-1",
			Email:    "anna@example.com",
			FullName: &name,
		},
	}
}

// Both implementations must satisfy the same contract.
func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "credentials.json")),
	}
}

func TestStore_SaveAndRead(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Save(testCredentials()))

			assert.Equal(t, "access-abc", store.AccessToken())
			assert.Equal(t, "refresh-xyz", store.RefreshToken())

			user := store.User()
			require.NotNil(t, user)
			assert.Equal(t, "u-1", user.ID)
			assert.Equal(t, "anna@example.com", user.Email)
			require.NotNil(t, user.FullName)
			assert.Equal(t, "Anna Larsson", *user.FullName)
		})
	}
}

func TestStore_EmptyReads(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, store.AccessToken())
			assert.Empty(t, store.RefreshToken())
			assert.Nil(t, store.User())
		})
	}
}

func TestStore_ClearRemovesAllFieldsAtomically(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Save(testCredentials()))
			require.NoError(t, store.Clear())

			// Either both tokens are present or neither is.
			assert.Empty(t, store.AccessToken())
			assert.Empty(t, store.RefreshToken())
			assert.Nil(t, store.User())
		})
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Clear())
			require.NoError(t, store.Clear())
		})
	}
}

func TestStore_SaveReplacesPreviousBundle(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Save(testCredentials()))

			next := testCredentials()
			next.AccessToken = "access-2"
			next.RefreshToken = "refresh-2"
			require.NoError(t, store.Save(next))

			assert.Equal(t, "access-2", store.AccessToken())
			assert.Equal(t, "refresh-2", store.RefreshToken())
		})
	}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")

	first := NewFileStore(path)
	require.NoError(t, first.Save(testCredentials()))

	// A new store over the same path sees the saved bundle, the way a
	// reloaded SPA sees local storage.
	second := NewFileStore(path)
	assert.Equal(t, "access-abc", second.AccessToken())
	assert.Equal(t, "refresh-xyz", second.RefreshToken())
}

func TestFileStore_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save(testCredentials()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStore_CorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store := NewFileStore(path)
	assert.Empty(t, store.AccessToken())
	assert.Nil(t, store.User())
}
