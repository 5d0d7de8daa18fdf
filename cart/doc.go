// Package cart holds per-identity carts and wishlists with idempotency
// rules: wishlists have set semantics (duplicate adds and absent removes are
// signaled no-ops) and cart entries are unique per product, with repeated
// adds merging quantities.
//
// Mutations are optionally mirrored to a core.UserStore. Mirroring is fire
// and forget: a failed write is logged and the in-memory state stays
// authoritative.
//
// The store's RWMutex guards map integrity only. Two concurrent AddToCart
// calls for the same identity can interleave read-modify-write and lose an
// increment; the caller is expected to run at most one conversation per
// identity at a time.
package cart
