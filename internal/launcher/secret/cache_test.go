package secret

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/permadeath/launcher/internal/logging"
)

func newCache(t *testing.T) *Cache {
	t.Helper()
	l := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewCache(l)
}

func TestCache_StoreLoadDelete(t *testing.T) {
	keyring.MockInit()
	c := newCache(t)
	ctx := context.Background()

	_, ok := c.Load(ctx)
	require.False(t, ok, "empty cache must report absent")

	require.NoError(t, c.Store(ctx, "token-1"))

	got, ok := c.Load(ctx)
	require.True(t, ok)
	require.Equal(t, "token-1", got)

	// Each login overwrites the single slot.
	require.NoError(t, c.Store(ctx, "token-2"))
	got, ok = c.Load(ctx)
	require.True(t, ok)
	require.Equal(t, "token-2", got)

	require.NoError(t, c.Delete(ctx))
	_, ok = c.Load(ctx)
	require.False(t, ok)
}

func TestCache_DeleteIsIdempotent(t *testing.T) {
	keyring.MockInit()
	c := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Delete(ctx))
	require.NoError(t, c.Delete(ctx))
}

func TestCache_Load_BackendErrorReportsAbsent(t *testing.T) {
	keyring.MockInitWithError(errors.New("dbus unavailable"))
	t.Cleanup(keyring.MockInit)
	c := newCache(t)

	_, ok := c.Load(context.Background())
	require.False(t, ok, "backend failure must read as absent, not error")
}
