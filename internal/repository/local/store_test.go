package local

import (
	"context"
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/luis-epic/el-point-ai/internal/domain"
	"github.com/luis-epic/el-point-ai/internal/domain/repository"
	"github.com/luis-epic/el-point-ai/internal/pkg/errors"
)

func newTestStore(t *testing.T) repository.Store {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(schema)
	require.NoError(t, err)

	return NewStore(NewDBForTest(db, zap.NewNop()), zap.NewNop())
}

func place(id string) domain.DirectoryItem {
	name := "Place " + id
	return domain.DirectoryItem{
		ID:      id,
		Name:    name,
		Address: "Caracas",
	}
}

func TestLocalStore_Auth(t *testing.T) {
	ctx := context.Background()

	t.Run("sign in accepts any email and derives the profile", func(t *testing.T) {
		store := newTestStore(t)

		session, err := store.SignIn(ctx, "maria.perez@example.com", "whatever")

		require.NoError(t, err)
		assert.Equal(t, "mock-user-123", session.User.ID)
		assert.Equal(t, "maria.perez@example.com", session.User.Email)
		require.NotNil(t, session.User.Name)
		assert.Equal(t, "maria.perez", *session.User.Name)
		require.NotNil(t, session.User.AvatarURL)
		assert.Contains(t, *session.User.AvatarURL, "ui-avatars.com")
		assert.Empty(t, session.AccessToken)
	})

	t.Run("email without @ is rejected", func(t *testing.T) {
		store := newTestStore(t)

		session, err := store.SignIn(ctx, "not-an-email", "pw")

		assert.ErrorIs(t, err, errors.ErrInvalidEmail)
		assert.Nil(t, session)
	})

	t.Run("session survives in the store and sign out clears it", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.SignIn(ctx, "maria@example.com", "pw")
		require.NoError(t, err)

		user, err := store.GetUser(ctx)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "maria@example.com", user.Email)

		require.NoError(t, store.SignOut(ctx))

		user, err = store.GetUser(ctx)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("sign up behaves like sign in", func(t *testing.T) {
		store := newTestStore(t)

		session, err := store.SignUp(ctx, "new@example.com", "pw")

		require.NoError(t, err)
		assert.Equal(t, "mock-user-123", session.User.ID)
	})
}

func TestLocalStore_Favorites(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip preserves insertion order", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.AddFavorite(ctx, place("a")))
		require.NoError(t, store.AddFavorite(ctx, place("b")))
		require.NoError(t, store.AddFavorite(ctx, place("c")))

		items, err := store.GetFavorites(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "a", items[0].ID)
		assert.Equal(t, "b", items[1].ID)
		assert.Equal(t, "c", items[2].ID)
	})

	t.Run("adding an existing id replaces in place", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.AddFavorite(ctx, place("a")))
		require.NoError(t, store.AddFavorite(ctx, place("b")))

		updated := place("a")
		updated.Name = "Renamed"
		require.NoError(t, store.AddFavorite(ctx, updated))

		items, err := store.GetFavorites(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "a", items[0].ID)
		assert.Equal(t, "Renamed", items[0].Name)
		assert.Equal(t, "b", items[1].ID)
	})

	t.Run("add then remove restores the prior collection", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.AddFavorite(ctx, place("a")))
		before, err := store.GetFavorites(ctx)
		require.NoError(t, err)

		require.NoError(t, store.AddFavorite(ctx, place("b")))
		require.NoError(t, store.RemoveFavorite(ctx, "b"))

		after, err := store.GetFavorites(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.AddFavorite(ctx, place("a")))
		require.NoError(t, store.RemoveFavorite(ctx, "a"))
		require.NoError(t, store.RemoveFavorite(ctx, "a"))
		require.NoError(t, store.RemoveFavorite(ctx, "never-existed"))

		items, err := store.GetFavorites(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("empty store reads as empty slice", func(t *testing.T) {
		store := newTestStore(t)

		items, err := store.GetFavorites(ctx)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestLocalStore_History(t *testing.T) {
	ctx := context.Background()

	t.Run("newest entries come first", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.AddToHistory(ctx, place("a")))
		require.NoError(t, store.AddToHistory(ctx, place("b")))

		items, err := store.GetHistory(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "b", items[0].ID)
		assert.Equal(t, "a", items[1].ID)
		assert.False(t, items[0].VisitedAt.IsZero())
	})

	t.Run("revisiting promotes instead of duplicating", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.AddToHistory(ctx, place("x")))
		require.NoError(t, store.AddToHistory(ctx, place("y")))
		require.NoError(t, store.AddToHistory(ctx, place("x")))

		items, err := store.GetHistory(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "x", items[0].ID)
		assert.Equal(t, "y", items[1].ID)
	})

	t.Run("history is capped at the limit", func(t *testing.T) {
		store := newTestStore(t)

		for i := 0; i < domain.HistoryLimit+1; i++ {
			require.NoError(t, store.AddToHistory(ctx, place(fmt.Sprintf("p-%d", i))))
		}

		items, err := store.GetHistory(ctx)
		require.NoError(t, err)
		require.Len(t, items, domain.HistoryLimit)
		// Newest entry first, oldest entry evicted.
		assert.Equal(t, fmt.Sprintf("p-%d", domain.HistoryLimit), items[0].ID)
		assert.Equal(t, "p-1", items[len(items)-1].ID)
	})

	t.Run("note updates rewrite in place without reordering", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.AddToHistory(ctx, place("a")))
		require.NoError(t, store.AddToHistory(ctx, place("b")))

		require.NoError(t, store.UpdateHistoryNote(ctx, "a", "worth another visit"))

		items, err := store.GetHistory(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "b", items[0].ID)
		assert.Equal(t, "a", items[1].ID)
		require.NotNil(t, items[1].UserNotes)
		assert.Equal(t, "worth another visit", *items[1].UserNotes)
		assert.Nil(t, items[0].UserNotes)
	})

	t.Run("note for unknown id is a no-op", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.AddToHistory(ctx, place("a")))
		require.NoError(t, store.UpdateHistoryNote(ctx, "missing", "note"))

		items, err := store.GetHistory(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Nil(t, items[0].UserNotes)
	})
}

func TestLocalStore_IsRemote(t *testing.T) {
	store := newTestStore(t)
	assert.False(t, store.IsRemote())
}
