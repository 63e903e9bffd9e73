package remote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/luis-epic/el-point-ai/internal/config"
	"github.com/luis-epic/el-point-ai/internal/domain"
)

func TestToken(t *testing.T) {
	user := &domain.UserProfile{ID: "user-42", Email: "maria@example.com"}

	t.Run("round trip", func(t *testing.T) {
		token, err := issueToken(user, "signing-key", time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		sub, err := ParseToken(token, "signing-key")
		require.NoError(t, err)
		assert.Equal(t, "user-42", sub)
	})

	t.Run("wrong signing key is rejected", func(t *testing.T) {
		token, err := issueToken(user, "signing-key", time.Hour)
		require.NoError(t, err)

		sub, err := ParseToken(token, "other-key")
		assert.Error(t, err)
		assert.Empty(t, sub)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := issueToken(user, "signing-key", -time.Minute)
		require.NoError(t, err)

		sub, err := ParseToken(token, "signing-key")
		assert.Error(t, err)
		assert.Empty(t, sub)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		sub, err := ParseToken("not.a.token", "signing-key")
		assert.Error(t, err)
		assert.Empty(t, sub)
	})
}

func TestStore_HistoryIsNotPersistedRemotely(t *testing.T) {
	// History methods never touch the database in remote mode.
	s := NewStore(nil, config.AuthConfig{}, zap.NewNop())

	ctx := context.Background()

	items, err := s.GetHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.NoError(t, s.AddToHistory(ctx, domain.DirectoryItem{ID: "a"}))
	assert.NoError(t, s.UpdateHistoryNote(ctx, "a", "note"))
	assert.True(t, s.IsRemote())

	// Sessions are not recovered between restarts either.
	user, err := s.GetUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}
