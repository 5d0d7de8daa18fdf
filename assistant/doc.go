// Package assistant is the edge-facing boundary of ShopMesh. It exposes the
// operations consumed by the edge layer (connect/resolve-name, chat,
// track-search, recommendations, trending, cart and wishlist ops, product
// lookup, filtering and comparison, policy info) and funnels every internal
// error through one
// catch-and-degrade adapter: collaborator failures are logged with a
// diagnostic reference and converted to user-safe text. No public operation
// ever raises past this boundary; each always returns a value.
package assistant
