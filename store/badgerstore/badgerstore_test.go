package badgerstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/shopmesh/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(func(o *Options) { o.InMemory = true })
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Load(ctx, "u1")
	assert.True(t, errors.Is(err, core.ErrNotFound))

	require.NoError(t, s.SaveName(ctx, "u1", "Alice"))
	require.NoError(t, s.SaveWishlist(ctx, "u1", []string{"p1", "p2"}))

	rec, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", rec.DisplayName)
	assert.Equal(t, []string{"p1", "p2"}, rec.Wishlist)
}

func TestStore_UpdatePreservesOtherFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveName(ctx, "u1", "Alice"))
	require.NoError(t, s.SaveWishlist(ctx, "u1", []string{"p1"}))
	require.NoError(t, s.SaveName(ctx, "u1", "Alice Smith"))

	rec, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", rec.DisplayName)
	assert.Equal(t, []string{"p1"}, rec.Wishlist, "name update must not drop the wishlist")
}

func TestStore_IdentityIsolation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveName(ctx, "u1", "Alice"))
	_, err := s.Load(ctx, "u2")
	assert.True(t, errors.Is(err, core.ErrNotFound))
}
