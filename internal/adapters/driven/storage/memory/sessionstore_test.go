package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
)

func TestSessionStore_SaveAndLoad(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	session := domain.Session{
		Token: "tok-123",
		User:  domain.User{ID: "u-1", Email: "user@example.com"},
	}
	require.NoError(t, store.Save(ctx, session))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", loaded.Token)
	assert.Equal(t, "user@example.com", loaded.User.Email)
}

func TestSessionStore_Clear(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Session{Token: "tok"}))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Clearing an empty store is not an error.
	assert.NoError(t, store.Clear(ctx))
}
