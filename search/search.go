// Package search houses concrete implementations of core.SemanticSearcher.
// The interface itself lives in core to centralize domain contracts.
//
// KeywordSearcher is a naive keyword scorer over the catalog snapshot,
// suitable for tests and local development. Swap in a vector index backed
// implementation for production retrieval; callers treat any implementation
// as pure and idempotent, and map failures to "no match".
package search

import (
	"context"
	"sort"
	"strings"

	"github.com/hupe1980/shopmesh/catalog"
	"github.com/hupe1980/shopmesh/core"
)

// KeywordSearcher scores products by counting query tokens appearing in the
// product name or category (case-insensitive substring). Linear scan per
// query; results are ordered by score with catalog-order ties.
type KeywordSearcher struct {
	catalog *catalog.Snapshot
}

var _ core.SemanticSearcher = (*KeywordSearcher)(nil)

// NewKeywordSearcher constructs a searcher over the snapshot.
func NewKeywordSearcher(snapshot *catalog.Snapshot) *KeywordSearcher {
	return &KeywordSearcher{catalog: snapshot}
}

// Search implements core.SemanticSearcher. It never fails; an unmatched query
// yields an empty slice.
func (s *KeywordSearcher) Search(ctx context.Context, query string, k int) ([]core.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tokens := strings.Fields(strings.ToLower(query))

	type scored struct {
		product core.Product
		score   int
	}
	var hits []scored
	s.catalog.Range(func(p core.Product) bool {
		haystack := strings.ToLower(p.Name + " " + p.Category)
		score := 0
		for _, tok := range tokens {
			if strings.Contains(haystack, tok) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{product: p, score: score})
		}
		return true
	})

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	if k < 0 {
		k = 0
	}
	if k > len(hits) {
		k = len(hits)
	}
	out := make([]core.Product, 0, k)
	for _, h := range hits[:k] {
		out = append(out, h.product)
	}
	return out, nil
}
