package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/shopmesh/catalog"
	"github.com/hupe1980/shopmesh/core"
	"github.com/hupe1980/shopmesh/internal/testutil"
	"github.com/hupe1980/shopmesh/store"
)

func testSnapshot() *catalog.Snapshot {
	return testutil.MustSnapshot(
		testutil.NewProductBuilder("p1", "Laptops").Name("Dell XPS").Price(1000).Build(),
		testutil.NewProductBuilder("p2", "Headphones").Name("Sony WH").Price(250).Build(),
		testutil.NewProductBuilder("p3", "Cameras").Name("Canon EOS").Price(1500).OutOfStock().Build(),
	)
}

func TestAddToCart_RejectsBadQuantity(t *testing.T) {
	s := NewStore(testSnapshot())
	_, err := s.AddToCart(context.Background(), "u1", "p1", 0)
	require.Error(t, err)
	assert.True(t, core.IsValidation(err))

	_, err = s.AddToCart(context.Background(), "u1", "p1", -2)
	assert.True(t, core.IsValidation(err))
}

func TestAddToCart_RejectsUnknownAndOutOfStock(t *testing.T) {
	s := NewStore(testSnapshot())

	_, err := s.AddToCart(context.Background(), "u1", "ghost", 1)
	assert.True(t, errors.Is(err, core.ErrNotFound))

	_, err = s.AddToCart(context.Background(), "u1", "p3", 1)
	assert.True(t, errors.Is(err, core.ErrOutOfStock))
}

func TestAddToCart_MergesQuantities(t *testing.T) {
	s := NewStore(testSnapshot())

	total, err := s.AddToCart(context.Background(), "u1", "p1", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	total, err = s.AddToCart(context.Background(), "u1", "p1", 3)
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	items := s.Items("u1")
	require.Len(t, items, 1, "repeated adds keep a single entry per product")
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCart_ViewTotals(t *testing.T) {
	s := NewStore(testSnapshot())
	ctx := context.Background()
	_, err := s.AddToCart(ctx, "u1", "p1", 2) // 2000
	require.NoError(t, err)
	_, err = s.AddToCart(ctx, "u1", "p2", 1) // 250
	require.NoError(t, err)

	view := s.Cart("u1")
	require.Len(t, view.Lines, 2)
	assert.InDelta(t, 2250.0, view.Total, 0.001)
	assert.InDelta(t, 2000.0, view.Lines[0].Subtotal, 0.001)
}

func TestRemoveFromCart(t *testing.T) {
	s := NewStore(testSnapshot())
	ctx := context.Background()
	_, err := s.AddToCart(ctx, "u1", "p1", 1)
	require.NoError(t, err)

	assert.True(t, s.RemoveFromCart(ctx, "u1", "p1"))
	assert.False(t, s.RemoveFromCart(ctx, "u1", "p1"), "second remove signals not-present")
	assert.Empty(t, s.Items("u1"))
}

func TestWishlist_Idempotency(t *testing.T) {
	s := NewStore(testSnapshot())
	ctx := context.Background()

	assert.True(t, s.AddToWishlist(ctx, "u1", "p1"))
	assert.False(t, s.AddToWishlist(ctx, "u1", "p1"), "duplicate add signals already-present")
	assert.Len(t, s.WishlistProductIDs("u1"), 1, "storage holds exactly one entry")

	assert.True(t, s.RemoveFromWishlist(ctx, "u1", "p1"))
	assert.False(t, s.RemoveFromWishlist(ctx, "u1", "p1"), "absent remove signals not-present")
	assert.Empty(t, s.WishlistProductIDs("u1"))
}

func TestWishlist_ViewJoinsCatalog(t *testing.T) {
	s := NewStore(testSnapshot())
	ctx := context.Background()
	s.AddToWishlist(ctx, "u1", "p2")
	s.AddToWishlist(ctx, "u1", "unknown-id")

	products := s.Wishlist("u1")
	require.Len(t, products, 1, "ids missing from the snapshot are skipped")
	assert.Equal(t, "Sony WH", products[0].Name)
}

func TestIdentityIsolation(t *testing.T) {
	s := NewStore(testSnapshot())
	ctx := context.Background()
	_, err := s.AddToCart(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	s.AddToWishlist(ctx, "u1", "p2")

	assert.Empty(t, s.Items("u2"))
	assert.Empty(t, s.WishlistProductIDs("u2"))
}

func TestWishlist_MirrorsToUserStore(t *testing.T) {
	users := store.NewInMemoryStore()
	s := NewStore(testSnapshot(), WithUserStore(users))
	ctx := context.Background()

	s.AddToWishlist(ctx, "u1", "p1")
	s.AddToWishlist(ctx, "u1", "p2")
	s.RemoveFromWishlist(ctx, "u1", "p1")

	rec, err := users.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, rec.Wishlist)
}

// failingUserStore always errors; mutations must still succeed in memory.
type failingUserStore struct{}

func (failingUserStore) Load(context.Context, string) (*core.UserRecord, error) {
	return nil, errors.New("store down")
}
func (failingUserStore) SaveName(context.Context, string, string) error {
	return errors.New("store down")
}
func (failingUserStore) SaveWishlist(context.Context, string, []string) error {
	return errors.New("store down")
}

func TestWishlist_MirrorFailureDegrades(t *testing.T) {
	s := NewStore(testSnapshot(), WithUserStore(failingUserStore{}))

	assert.True(t, s.AddToWishlist(context.Background(), "u1", "p1"))
	assert.Len(t, s.WishlistProductIDs("u1"), 1, "in-memory state stays authoritative")
}
