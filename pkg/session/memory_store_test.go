package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/interviewpro/pkg/session"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("create get update delete", func(t *testing.T) {
		t.Parallel()

		var expired []session.Session
		store := session.NewMemoryStore(0, func(s session.Session) {
			expired = append(expired, s)
		})
		defer store.Close()

		s := session.New("token-1", time.Hour)
		require.NoError(t, store.Create(ctx, s))

		got, err := store.Get(ctx, "token-1")
		require.NoError(t, err)
		assert.Equal(t, s.ID, got.ID)

		got.Touch(2 * time.Hour)
		require.NoError(t, store.Update(ctx, got))

		again, err := store.Get(ctx, "token-1")
		require.NoError(t, err)
		assert.Equal(t, got.ExpiresAt, again.ExpiresAt)

		require.NoError(t, store.Delete(ctx, "token-1"))
		_, err = store.Get(ctx, "token-1")
		require.ErrorIs(t, err, session.ErrSessionNotFound)

		require.Len(t, expired, 1)
		assert.Equal(t, s.ID, expired[0].ID)
	})

	t.Run("returned sessions are copies", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore(0)
		s := session.New("token", time.Hour)
		require.NoError(t, store.Create(ctx, s))

		got, err := store.Get(ctx, "token")
		require.NoError(t, err)
		got.ExpiresAt = time.Time{}

		again, err := store.Get(ctx, "token")
		require.NoError(t, err)
		assert.False(t, again.ExpiresAt.IsZero())
	})

	t.Run("invalid sessions are rejected", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore(0)
		require.ErrorIs(t, store.Create(ctx, nil), session.ErrInvalidSession)
		require.ErrorIs(t, store.Create(ctx, &session.Session{}), session.ErrInvalidSession)
		require.ErrorIs(t, store.Update(ctx, session.New("missing", time.Hour)), session.ErrSessionNotFound)
	})

	t.Run("expired session is removed on get", func(t *testing.T) {
		t.Parallel()

		var calls int
		store := session.NewMemoryStore(0, func(session.Session) { calls++ })
		require.NoError(t, store.Create(ctx, session.New("old", -time.Second)))

		_, err := store.Get(ctx, "old")
		require.ErrorIs(t, err, session.ErrSessionExpired)
		assert.Equal(t, 0, store.Len())
		assert.Equal(t, 1, calls)
	})

	t.Run("delete expired", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore(0)
		require.NoError(t, store.Create(ctx, session.New("old-1", -time.Second)))
		require.NoError(t, store.Create(ctx, session.New("old-2", -time.Second)))
		require.NoError(t, store.Create(ctx, session.New("fresh", time.Hour)))

		assert.Equal(t, 2, store.DeleteExpired(ctx))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("sweeper notifies expire hooks", func(t *testing.T) {
		t.Parallel()

		var (
			mu  sync.Mutex
			ids []string
		)
		store := session.NewMemoryStore(10*time.Millisecond, func(s session.Session) {
			mu.Lock()
			defer mu.Unlock()
			ids = append(ids, s.Token)
		})
		defer store.Close()

		require.NoError(t, store.Create(ctx, session.New("short", 5*time.Millisecond)))

		assert.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return len(ids) == 1 && ids[0] == "short"
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore(time.Minute)
		require.NoError(t, store.Close())
		require.NoError(t, store.Close())
	})
}
