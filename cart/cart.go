package cart

import (
	"context"
	"sync"
	"time"

	"github.com/hupe1980/shopmesh/catalog"
	"github.com/hupe1980/shopmesh/core"
	"github.com/hupe1980/shopmesh/logging"
)

// Store keeps carts and wishlists in process-local maps keyed by identity.
type Store struct {
	mu        sync.RWMutex
	carts     map[string][]core.CartItem
	wishlists map[string][]string
	catalog   *catalog.Snapshot
	users     core.UserStore // optional mirror, may be nil
	logger    logging.Logger
	now       func() time.Time
}

// Option mutates Store construction settings.
type Option func(*Store)

// WithUserStore enables best-effort wishlist mirroring to the given store.
func WithUserStore(users core.UserStore) Option {
	return func(s *Store) { s.users = users }
}

// WithLogger injects a logger; defaults to NoOpLogger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock overrides the time source; intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore constructs an empty cart/wishlist store over the snapshot.
func NewStore(snapshot *catalog.Snapshot, opts ...Option) *Store {
	s := &Store{
		carts:     make(map[string][]core.CartItem),
		wishlists: make(map[string][]string),
		catalog:   snapshot,
		logger:    logging.NoOpLogger{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddToWishlist inserts productID into the identity's wishlist. The returned
// flag is false when the product was already present (idempotent no-op).
func (s *Store) AddToWishlist(ctx context.Context, identity, productID string) bool {
	s.mu.Lock()
	ids := s.wishlists[identity]
	for _, id := range ids {
		if id == productID {
			s.mu.Unlock()
			return false
		}
	}
	ids = append(ids, productID)
	s.wishlists[identity] = ids
	mirror := append([]string(nil), ids...)
	s.mu.Unlock()

	s.mirrorWishlist(ctx, identity, mirror)
	return true
}

// RemoveFromWishlist removes productID from the identity's wishlist. The
// returned flag is false when the product was not present.
func (s *Store) RemoveFromWishlist(ctx context.Context, identity, productID string) bool {
	s.mu.Lock()
	ids := s.wishlists[identity]
	idx := -1
	for i, id := range ids {
		if id == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	ids = append(ids[:idx], ids[idx+1:]...)
	s.wishlists[identity] = ids
	mirror := append([]string(nil), ids...)
	s.mu.Unlock()

	s.mirrorWishlist(ctx, identity, mirror)
	return true
}

// WishlistProductIDs returns the identity's wishlisted product ids in
// insertion order.
func (s *Store) WishlistProductIDs(identity string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.wishlists[identity]...)
}

// Wishlist joins the stored ids against the catalog snapshot. Ids missing
// from the snapshot are silently skipped.
func (s *Store) Wishlist(identity string) []core.Product {
	ids := s.WishlistProductIDs(identity)
	out := make([]core.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.catalog.Get(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// AddToCart adds quantity units of productID to the identity's cart and
// returns the resulting quantity for that product. Quantities below one are
// rejected with a ValidationError; unknown products with ErrNotFound;
// out-of-stock products with ErrOutOfStock. An existing entry is incremented
// in place.
//
// The read-increment-write sequence is not serialized per identity: two
// concurrent calls may both read the pre-update quantity and the last write
// wins. Single writer per identity is a caller convention.
func (s *Store) AddToCart(ctx context.Context, identity, productID string, quantity int) (int, error) {
	if quantity < 1 {
		return 0, core.NewValidationError("quantity must be at least 1, got %d", quantity)
	}
	product, ok := s.catalog.Get(productID)
	if !ok {
		return 0, core.ErrNotFound
	}
	if !product.InStock {
		return 0, core.ErrOutOfStock
	}

	s.mu.RLock()
	current := 0
	for _, item := range s.carts[identity] {
		if item.ProductID == productID {
			current = item.Quantity
			break
		}
	}
	s.mu.RUnlock()

	total := current + quantity

	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[identity]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = total
			return total, nil
		}
	}
	s.carts[identity] = append(items, core.CartItem{ProductID: productID, Quantity: total, AddedAt: s.now()})
	return total, nil
}

// RemoveFromCart deletes the cart entry for productID. The returned flag is
// false when no entry existed.
func (s *Store) RemoveFromCart(ctx context.Context, identity, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[identity]
	for i := range items {
		if items[i].ProductID == productID {
			s.carts[identity] = append(items[:i], items[i+1:]...)
			return true
		}
	}
	return false
}

// Cart joins the identity's cart against the catalog snapshot, computing the
// running total over joined lines (price x quantity).
func (s *Store) Cart(identity string) core.CartView {
	s.mu.RLock()
	items := append([]core.CartItem(nil), s.carts[identity]...)
	s.mu.RUnlock()

	view := core.CartView{Lines: make([]core.CartLine, 0, len(items))}
	for _, item := range items {
		product, ok := s.catalog.Get(item.ProductID)
		if !ok {
			continue
		}
		subtotal := product.Price * float64(item.Quantity)
		view.Lines = append(view.Lines, core.CartLine{Product: product, Quantity: item.Quantity, Subtotal: subtotal})
		view.Total += subtotal
	}
	return view
}

// Items returns a copy of the raw cart entries for identity.
func (s *Store) Items(identity string) []core.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.CartItem(nil), s.carts[identity]...)
}

// mirrorWishlist writes the wishlist to the user store, if configured.
// Failures are logged and swallowed; in-memory state stays authoritative.
func (s *Store) mirrorWishlist(ctx context.Context, identity string, ids []string) {
	if s.users == nil {
		return
	}
	if err := s.users.SaveWishlist(ctx, identity, ids); err != nil {
		s.logger.Warn("wishlist mirror write failed", "identity", identity, "error", err)
	}
}
