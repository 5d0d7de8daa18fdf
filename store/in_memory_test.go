package store

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/shopmesh/core"
)

func TestInMemoryStore_RoundTrip(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	if _, err := s.Load(ctx, "u1"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Load on empty store: err = %v, want ErrNotFound", err)
	}

	if err := s.SaveName(ctx, "u1", "Alice"); err != nil {
		t.Fatalf("SaveName: %v", err)
	}
	if err := s.SaveWishlist(ctx, "u1", []string{"p1", "p2"}); err != nil {
		t.Fatalf("SaveWishlist: %v", err)
	}

	rec, err := s.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.DisplayName != "Alice" || len(rec.Wishlist) != 2 {
		t.Fatalf("record = %+v", rec)
	}
}

func TestInMemoryStore_ReturnsClones(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()
	if err := s.SaveWishlist(ctx, "u1", []string{"p1"}); err != nil {
		t.Fatalf("SaveWishlist: %v", err)
	}

	rec, err := s.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rec.Wishlist[0] = "mutated"
	rec.DisplayName = "mutated"

	fresh, err := s.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if fresh.Wishlist[0] != "p1" || fresh.DisplayName != "" {
		t.Fatal("internal record mutated through returned clone")
	}
}
