// Package store houses concrete implementations of core.UserStore, the
// optional keyed-by-identity document store mirroring display names and
// wishlists. The interface lives in core to centralize domain contracts.
//
// Add additional backends (Redis, Postgres, Firestore, etc.) in sub-packages
// without changing any calling code - only the wiring layer needs to decide
// which implementation to instantiate. An embedded durable backend is
// provided in store/badgerstore.
package store
