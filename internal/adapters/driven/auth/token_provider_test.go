package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperchat-labs/paperchat-cli/internal/adapters/driven/storage/memory"
	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
)

func TestSessionTokenProvider_GetToken(t *testing.T) {
	sessions := memory.NewSessionStore()
	require.NoError(t, sessions.Save(context.Background(), domain.Session{
		Token: "tok-abc",
		User:  domain.User{ID: "u1"},
	}))

	provider := NewSessionTokenProvider(sessions)

	token, err := provider.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestSessionTokenProvider_NoSession(t *testing.T) {
	provider := NewSessionTokenProvider(memory.NewSessionStore())

	_, err := provider.GetToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}
