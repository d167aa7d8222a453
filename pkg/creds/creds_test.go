package creds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *CredentialStore {
	t.Helper()
	return NewCredentialStore(Config{Path: filepath.Join(t.TempDir(), "credentials.txt")})
}

func TestEnsureDefaults(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.EnsureDefaults())

	role, err := store.Check("admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = store.Check("principal", "principal")
	require.NoError(t, err)
	assert.Equal(t, RolePrincipal, role)

	t.Run("existing file left untouched", func(t *testing.T) {
		require.NoError(t, store.Add("extra", "secret", RoleGuest))
		require.NoError(t, store.EnsureDefaults())

		role, err := store.Check("extra", "secret")
		require.NoError(t, err)
		assert.Equal(t, RoleGuest, role)
	})
}

func TestCheck(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Add("bob", "pw1", RoleStaff))

	t.Run("exact match on both fields", func(t *testing.T) {
		role, err := store.Check("bob", "pw1")
		require.NoError(t, err)
		assert.Equal(t, RoleStaff, role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := store.Check("bob", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := store.Check("carol", "pw1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("first entry shadows a duplicate username", func(t *testing.T) {
		require.NoError(t, store.Add("bob", "pw2", RoleAdmin))

		role, err := store.Check("bob", "pw1")
		require.NoError(t, err)
		assert.Equal(t, RoleStaff, role)

		// The shadowed entry still matches on its own password.
		role, err = store.Check("bob", "pw2")
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, role)
	})
}

func TestAdd_Validation(t *testing.T) {
	store := newTestStore(t)

	assert.Error(t, store.Add("", "pw", RoleGuest))
	assert.Error(t, store.Add("has space", "pw", RoleGuest))
	assert.Error(t, store.Add("user", "p w", RoleGuest))
	assert.Error(t, store.Add("user", "pw", Role("WIZARD")))
}

func TestResetPassword(t *testing.T) {
	t.Run("updates every matching line", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Add("bob", "old1", RoleStaff))
		require.NoError(t, store.Add("alice", "keep", RoleAdmin))
		require.NoError(t, store.Add("bob", "old2", RoleGuest))

		require.NoError(t, store.ResetPassword("bob", "fresh"))

		entries, err := store.loadAll()
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "fresh", entries[0].Password)
		assert.Equal(t, "keep", entries[1].Password)
		assert.Equal(t, "fresh", entries[2].Password)
		// Roles ride along unchanged.
		assert.Equal(t, RoleStaff, entries[0].Role)
		assert.Equal(t, RoleGuest, entries[2].Role)
	})

	t.Run("absent username fails and leaves the file unchanged", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Add("alice", "keep", RoleAdmin))
		before, err := os.ReadFile(store.Path())
		require.NoError(t, err)

		err = store.ResetPassword("bob", "fresh")
		assert.ErrorIs(t, err, ErrUserNotFound)

		after, err := os.ReadFile(store.Path())
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestRemove(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Add("bob", "pw1", RoleStaff))
	require.NoError(t, store.Add("alice", "pw", RoleAdmin))
	require.NoError(t, store.Add("bob", "pw2", RoleGuest))

	require.NoError(t, store.Remove("bob"))

	entries, err := store.loadAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].Username)

	assert.ErrorIs(t, store.Remove("bob"), ErrUserNotFound)
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole(" staff ")
	require.NoError(t, err)
	assert.Equal(t, RoleStaff, role)

	_, err = ParseRole("wizard")
	assert.Error(t, err)
}

func TestRolePermissions(t *testing.T) {
	assert.True(t, RoleAdmin.CanManageRecords())
	assert.True(t, RoleStaff.CanManageRecords())
	assert.False(t, RolePrincipal.CanManageRecords())
	assert.False(t, RoleGuest.CanManageRecords())

	assert.True(t, RoleAdmin.CanAdminister())
	assert.False(t, RoleStaff.CanAdminister())
}

func TestSessionLifecycle(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.EnsureDefaults())
	sessionPath := filepath.Join(t.TempDir(), "session.yaml")

	t.Run("login mints a session", func(t *testing.T) {
		session, err := store.Login("staff", "staff")
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, "staff", session.Username)
		assert.Equal(t, RoleStaff, session.Role)
	})

	t.Run("bad credentials do not mint a session", func(t *testing.T) {
		_, err := store.Login("staff", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("save, load, clear", func(t *testing.T) {
		session, err := store.Login("admin", "admin")
		require.NoError(t, err)
		require.NoError(t, SaveSession(session, sessionPath))

		loaded, err := LoadSession(sessionPath)
		require.NoError(t, err)
		assert.Equal(t, session.ID, loaded.ID)
		assert.Equal(t, session.Role, loaded.Role)

		require.NoError(t, ClearSession(sessionPath))
		_, err = LoadSession(sessionPath)
		assert.ErrorIs(t, err, ErrNoSession)

		// Clearing twice is fine.
		require.NoError(t, ClearSession(sessionPath))
	})
}
