// Package core provides the foundational domain types, interfaces and error
// taxonomy used by ShopMesh. It defines the core abstractions for:
//
//   - Products (read-only catalog records shared by every component)
//   - Messages (role-based conversational turns)
//   - Behavior summaries (derived search-affinity snapshots)
//   - Cart / wishlist records and their display-ready views
//   - Pluggable collaborator contracts (semantic search, user store)
//
// The package intentionally keeps implementation concerns (session storage,
// scoring, the assistant boundary) out of scope, exposing small interfaces to
// enable custom backends and extensions. All exported identifiers include
// concise documentation to aid discoverability and external consumption.
package core
