package store

import (
	"context"
	"sync"

	"github.com/hupe1980/shopmesh/core"
)

// InMemoryStore is a volatile core.UserStore implementation keeping records
// in a process-local map. It is safe for concurrent access and best suited
// for tests or single-process deployments. Each returned record is cloned to
// prevent external mutation of internal state.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]*core.UserRecord
}

var _ core.UserStore = (*InMemoryStore)(nil)

// NewInMemoryStore constructs an empty in-memory user store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]*core.UserRecord)}
}

// Load returns a clone of the stored record for identity, or core.ErrNotFound.
func (s *InMemoryStore) Load(ctx context.Context, identity string) (*core.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[identity]
	if !ok {
		return nil, core.ErrNotFound
	}
	return cloneRecord(rec), nil
}

// SaveName upserts the display name for identity.
func (s *InMemoryStore) SaveName(ctx context.Context, identity, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordLocked(identity).DisplayName = name
	return nil
}

// SaveWishlist replaces the mirrored wishlist for identity.
func (s *InMemoryStore) SaveWishlist(ctx context.Context, identity string, productIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordLocked(identity).Wishlist = append([]string(nil), productIDs...)
	return nil
}

// recordLocked returns the live record for identity, creating it lazily.
// Caller must hold the write lock.
func (s *InMemoryStore) recordLocked(identity string) *core.UserRecord {
	rec, ok := s.records[identity]
	if !ok {
		rec = &core.UserRecord{Identity: identity}
		s.records[identity] = rec
	}
	return rec
}

func cloneRecord(rec *core.UserRecord) *core.UserRecord {
	out := *rec
	out.Wishlist = append([]string(nil), rec.Wishlist...)
	return &out
}
