package core

import "context"

// SemanticSearcher resolves free-text queries to catalog products. It is
// treated as pure and idempotent; any failure maps to "no match" at the
// assistant boundary.
type SemanticSearcher interface {
	// Search returns up to k products ordered by relevance.
	Search(ctx context.Context, query string, k int) ([]Product, error)
}

// UserStore is an optional keyed-by-identity document store mirroring display
// names and wishlists across restarts. All writes are best effort: a failed
// write degrades to in-memory-only state without failing the caller.
type UserStore interface {
	// Load returns the stored record for identity, or ErrNotFound.
	Load(ctx context.Context, identity string) (*UserRecord, error)

	// SaveName upserts the display name for identity.
	SaveName(ctx context.Context, identity, name string) error

	// SaveWishlist replaces the mirrored wishlist for identity.
	SaveWishlist(ctx context.Context, identity string, productIDs []string) error
}
