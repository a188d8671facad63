package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitenSisghSoft/soundbox/internal/role"
)

func TestNewDefaultsToAdmin(t *testing.T) {
	sess, err := New(NewMemoryStore())
	require.NoError(t, err)

	assert.Equal(t, role.Default, sess.CurrentRole())
	assert.False(t, sess.Authenticated())
	assert.Nil(t, sess.User())
}

func TestSetRolePersistsAcrossReload(t *testing.T) {
	store := NewMemoryStore()

	sess, err := New(store)
	require.NoError(t, err)
	require.NoError(t, sess.SetRole(role.Agent))

	// A new session over the same store is a page reload.
	reloaded, err := New(store)
	require.NoError(t, err)
	assert.Equal(t, role.Agent, reloaded.CurrentRole())
}

func TestSetRoleNotifiesSubscribers(t *testing.T) {
	sess, err := New(NewMemoryStore())
	require.NoError(t, err)

	var seen []role.Role
	sess.Subscribe(func(r role.Role) { seen = append(seen, r) })

	require.NoError(t, sess.SetRole(role.Operations))
	require.NoError(t, sess.SetRole(role.Support))

	assert.Equal(t, []role.Role{role.Operations, role.Support}, seen)
}

func TestSetUserAdoptsRole(t *testing.T) {
	sess, err := New(NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, sess.SetUser(&User{ID: 7, Name: "Asha", Role: "agent"}))
	assert.Equal(t, role.Agent, sess.CurrentRole())

	// Clearing the user alone keeps the active role.
	require.NoError(t, sess.SetUser(nil))
	assert.Nil(t, sess.User())
	assert.Equal(t, role.Agent, sess.CurrentRole())
}

func TestSetUserUnknownRoleFallsBack(t *testing.T) {
	sess, err := New(NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, sess.SetUser(&User{ID: 1, Role: "superuser"}))
	assert.Equal(t, role.Default, sess.CurrentRole())
}

func TestClearWipesEverything(t *testing.T) {
	store := NewMemoryStore()
	sess, err := New(store)
	require.NoError(t, err)

	require.NoError(t, sess.SetToken("tok-123"))
	require.NoError(t, sess.SetUser(&User{ID: 2, Role: "agent"}))
	require.NoError(t, sess.Clear())

	assert.Empty(t, sess.Token())
	assert.Nil(t, sess.User())
	assert.Equal(t, role.Default, sess.CurrentRole())

	reloaded, err := New(store)
	require.NoError(t, err)
	assert.False(t, reloaded.Authenticated())
	assert.Equal(t, role.Default, reloaded.CurrentRole())
}

func TestFilterPersists(t *testing.T) {
	store := NewMemoryStore()
	sess, err := New(store)
	require.NoError(t, err)

	require.NoError(t, sess.SetFilter("merchant_mobile", "9876543210"))

	reloaded, err := New(store)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", reloaded.Filter("merchant_mobile"))
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	sess, err := New(store)
	require.NoError(t, err)
	require.NoError(t, sess.SetToken("tok-456"))
	require.NoError(t, sess.SetRole(role.Merchant))

	reloaded, err := New(NewFileStore(path))
	require.NoError(t, err)
	assert.Equal(t, "tok-456", reloaded.Token())
	assert.Equal(t, role.Merchant, reloaded.CurrentRole())
}

func TestFileStoreMissingFileIsEmptyState(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	state, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, state.Token)
	assert.Empty(t, state.Role)
}
