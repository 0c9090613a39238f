package session

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"recruit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func studentAccount() entity.Account {
	id := uuid.New()

	return &entity.StudentAccount{
		User:    &entity.User{ID: id, Email: "ada@example.com", Role: entity.RoleStudent},
		Profile: &entity.StudentProfile{UserID: id},
	}
}

func TestStore(t *testing.T) {
	store := NewStore()

	_, _, ok := store.Get()
	assert.False(t, ok)

	_, err := store.Require(entity.RoleStudent)
	assert.ErrorIs(t, err, entity.ErrAccountMissing)

	account := studentAccount()
	store.Set(account, "token-1")

	got, token, ok := store.Get()
	require.True(t, ok)
	assert.Same(t, account, got)
	assert.Equal(t, "token-1", token)

	got, err = store.Require(entity.RoleStudent)
	require.NoError(t, err)
	assert.Same(t, account, got)

	_, err = store.Require(entity.RoleRecruiter)
	assert.ErrorIs(t, err, entity.ErrRoleMismatch)

	store.Clear()
	_, token, ok = store.Get()
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()
	account := studentAccount()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Set(account, "token")
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Require(entity.RoleStudent)
		}()
	}
	wg.Wait()

	_, token, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "token", token)
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	token, err := store.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, token)

	assert.Error(t, store.Save())

	store.Set(studentAccount(), "token-1")
	require.NoError(t, store.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "ada@example.com")

	reopened := NewFileStore(path)
	token, err = reopened.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
	_, _, ok := reopened.Get()
	assert.False(t, ok, "account is never restored from disk")

	require.NoError(t, reopened.Forget())
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	require.NoError(t, reopened.Forget())
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).LoadToken()
	assert.Error(t, err)
}
