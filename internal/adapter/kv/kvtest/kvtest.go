// Package kvtest holds the behavioural checks every kv driver must pass.
package kvtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/covenantops-backend/internal/adapter/kv"
)

// Run exercises get/set/delete semantics against s. Keys are prefixed with t.Name()
// so drivers backed by shared infrastructure can be reused across tests.
func Run(t *testing.T, s kv.Store) {
	t.Helper()
	ctx := context.Background()
	key := t.Name() + "/doc"

	t.Run("absent key", func(t *testing.T) {
		_, found, err := s.Get(ctx, key+"-missing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, key, `{"loans":[]}`))
		got, found, err := s.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, `{"loans":[]}`, got)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, key, "second"))
		got, found, err := s.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "second", got)
	})

	t.Run("empty value is stored", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, key+"-empty", ""))
		got, found, err := s.Get(ctx, key+"-empty")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "", got)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, key))
		_, found, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found)
		require.NoError(t, s.Delete(ctx, key), "deleting an absent key must not fail")
	})

	t.Run("blank key rejected", func(t *testing.T) {
		require.ErrorIs(t, s.Set(ctx, " ", "x"), kv.ErrEmptyKey)
	})
}
