package recommend

import (
	"sort"
	"strings"

	"github.com/hupe1980/shopmesh/catalog"
	"github.com/hupe1980/shopmesh/core"
)

// Trending ranks in-stock catalog products identity-independently. An empty
// categoryFilter matches everything; otherwise products whose category
// contains the filter (case-insensitive substring) qualify. Deterministic and
// order-stable for a fixed snapshot: ties keep catalog iteration order. No
// caching.
func Trending(snapshot *catalog.Snapshot, categoryFilter string, limit int) []core.Product {
	filter := strings.ToLower(categoryFilter)

	type scored struct {
		product core.Product
		score   float64
	}
	var candidates []scored
	snapshot.Range(func(p core.Product) bool {
		if !p.InStock {
			return true
		}
		if filter != "" && !strings.Contains(strings.ToLower(p.Category), filter) {
			return true
		}
		candidates = append(candidates, scored{product: p, score: trendingScore(p)})
		return true
	})

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	if limit < 0 {
		limit = 0
	}
	if limit > len(candidates) {
		limit = len(candidates)
	}
	out := make([]core.Product, 0, limit)
	for _, c := range candidates[:limit] {
		out = append(out, c.product)
	}
	return out
}

func trendingScore(p core.Product) float64 {
	s := 40 * p.Rating
	s += 30 * min(float64(p.Reviews)/1000, 10)
	if p.Featured {
		s += 20
	}
	if p.Price < 5000 {
		s += 10
	}
	return s
}
