// Package catalog provides the read-only product snapshot shared by every
// ShopMesh component. The snapshot is loaded once by the edge layer, validated
// against the Product schema at construction time and never mutated
// afterwards, so downstream components skip defensive re-checks entirely.
//
// Iteration order is the load order of the source data and is stable for the
// lifetime of the snapshot; scorers rely on it for deterministic tie-breaking.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/hupe1980/shopmesh/core"
)

// Snapshot is an immutable, ordered view of the product catalog.
type Snapshot struct {
	products []core.Product
	byID     map[string]int
}

// New validates the given products and builds a snapshot preserving their
// order. It fails on the first schema violation or duplicate product id.
func New(products []core.Product) (*Snapshot, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	byID := make(map[string]int, len(products))
	for i, p := range products {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("catalog: product %d (%q) invalid: %w", i, p.ID, err)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		byID[p.ID] = i
	}
	snapshot := &Snapshot{products: make([]core.Product, len(products)), byID: byID}
	copy(snapshot.products, products)
	return snapshot, nil
}

// Load reads a JSON product file (array of Product objects) and validates it.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var products []core.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return New(products)
}

// Products returns a defensive copy of the ordered product list.
func (s *Snapshot) Products() []core.Product {
	out := make([]core.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id.
func (s *Snapshot) Get(id string) (core.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return core.Product{}, false
	}
	return s.products[i], true
}

// Len returns the number of products in the snapshot.
func (s *Snapshot) Len() int { return len(s.products) }

// Range calls fn for each product in stable catalog order until fn returns
// false. It avoids the copy cost of Products for hot scoring loops.
func (s *Snapshot) Range(fn func(p core.Product) bool) {
	for _, p := range s.products {
		if !fn(p) {
			return
		}
	}
}
