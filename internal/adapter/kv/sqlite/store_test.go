package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/covenantops-backend/internal/adapter/kv/kvtest"
	"github.com/heartmarshall/covenantops-backend/internal/adapter/kv/sqlite"
)

func TestStore(t *testing.T) {
	t.Parallel()

	s, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	kvtest.Run(t, s)
}

func TestStore_Reopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "kv.db")

	s, err := sqlite.New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "covenantops-demo-mode", "true"))
	require.NoError(t, s.Close())

	reopened, err := sqlite.New(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, found, err := reopened.Get(ctx, "covenantops-demo-mode")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "true", got)
	require.NoError(t, reopened.Ping(ctx))
	assert.Equal(t, path, reopened.Path())
}
