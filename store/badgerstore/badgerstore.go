// Package badgerstore implements core.UserStore on BadgerDB, giving the
// mirror embedded single-node durability without an external service. Writes
// remain best effort from the caller's perspective: the cart and assistant
// layers log and swallow any error this package returns.
package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/hupe1980/shopmesh/core"
)

// keyPrefix namespaces user records inside the shared keyspace.
const keyPrefix = "user:"

// Options configure the badger-backed user store.
type Options struct {
	// Path is the directory for BadgerDB files. Ignored when InMemory is set.
	Path string
	// InMemory disables disk persistence; useful for tests.
	InMemory bool
	// SyncWrites forces fsync on every write. Off by default: the mirror is
	// best effort and a lost tail on crash is acceptable.
	SyncWrites bool
}

// Store is a durable core.UserStore backed by an embedded BadgerDB instance.
type Store struct {
	db *badger.DB
}

var _ core.UserStore = (*Store)(nil)

// Open opens (or creates) the store at the configured location.
func Open(optFns ...func(o *Options)) (*Store, error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	badgerOpts := badger.DefaultOptions(opts.Path).
		WithInMemory(opts.InMemory).
		WithSyncWrites(opts.SyncWrites).
		WithLogger(nil)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("badgerstore: open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Load returns the stored record for identity, or core.ErrNotFound.
func (s *Store) Load(ctx context.Context, identity string) (*core.UserRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rec core.UserRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + identity))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("badgerstore: load %q: %w", identity, err)
	}
	return &rec, nil
}

// SaveName upserts the display name for identity.
func (s *Store) SaveName(ctx context.Context, identity, name string) error {
	return s.update(ctx, identity, func(rec *core.UserRecord) {
		rec.DisplayName = name
	})
}

// SaveWishlist replaces the mirrored wishlist for identity.
func (s *Store) SaveWishlist(ctx context.Context, identity string, productIDs []string) error {
	ids := append([]string(nil), productIDs...)
	return s.update(ctx, identity, func(rec *core.UserRecord) {
		rec.Wishlist = ids
	})
}

// update applies mutate to the stored record (creating it if absent) inside
// a single read-modify-write transaction.
func (s *Store) update(ctx context.Context, identity string, mutate func(*core.UserRecord)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := []byte(keyPrefix + identity)
	err := s.db.Update(func(txn *badger.Txn) error {
		rec := core.UserRecord{Identity: identity}
		item, err := txn.Get(key)
		switch {
		case err == nil:
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
		case errors.Is(err, badger.ErrKeyNotFound):
			// fresh record
		default:
			return err
		}
		mutate(&rec)
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return fmt.Errorf("badgerstore: update %q: %w", identity, err)
	}
	return nil
}
