package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create then get", func(t *testing.T) {
		store := NewMemorySessionStore()

		session := &Session{
			ID:        "sess-1",
			Username:  "admin",
			CreatedAt: time.Now(),
			ExpiresAt: time.Now().Add(time.Hour),
		}
		require.NoError(t, store.Create(ctx, session))

		found, err := store.Get(ctx, "sess-1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "admin", found.Username)
	})

	t.Run("unknown session yields nil without error", func(t *testing.T) {
		store := NewMemorySessionStore()

		found, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("expired sessions are reaped on read", func(t *testing.T) {
		store := NewMemorySessionStore()

		require.NoError(t, store.Create(ctx, &Session{
			ID:        "sess-old",
			Username:  "admin",
			CreatedAt: time.Now().Add(-2 * time.Hour),
			ExpiresAt: time.Now().Add(-time.Hour),
		}))

		found, err := store.Get(ctx, "sess-old")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("delete revokes a session", func(t *testing.T) {
		store := NewMemorySessionStore()

		require.NoError(t, store.Create(ctx, &Session{
			ID:        "sess-1",
			Username:  "admin",
			ExpiresAt: time.Now().Add(time.Hour),
		}))
		require.NoError(t, store.Delete(ctx, "sess-1"))

		found, err := store.Get(ctx, "sess-1")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
