package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDeactivate_KeepsRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := seedUser(t, db, "leaver")

	require.NoError(t, repo.Deactivate(context.Background(), user.ID))

	// The row survives deactivation; only the flag flips.
	loaded, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, loaded.IsActive)
	assert.Equal(t, "leaver", loaded.Username)
}

func TestUserCountActive_IgnoresDeactivated(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	seedUser(t, db, "active")
	gone := seedUser(t, db, "gone")
	require.NoError(t, repo.Deactivate(context.Background(), gone.ID))

	count, err := repo.CountActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserUpdateFields_PartialUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := seedUser(t, db, "editor")

	require.NoError(t, repo.UpdateFields(context.Background(), user.ID, map[string]any{
		"display_name": "The Editor",
	}))

	loaded, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.DisplayName)
	assert.Equal(t, "The Editor", *loaded.DisplayName)
	assert.Equal(t, user.Email, loaded.Email)
}

func TestUserTouchLastLogin(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := seedUser(t, db, "visitor")
	require.Nil(t, user.LastLogin)

	require.NoError(t, repo.TouchLastLogin(context.Background(), user.ID))

	loaded, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotNil(t, loaded.LastLogin)
}
