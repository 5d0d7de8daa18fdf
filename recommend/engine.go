package recommend

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/shopmesh/behavior"
	"github.com/hupe1980/shopmesh/catalog"
	"github.com/hupe1980/shopmesh/core"
	"github.com/hupe1980/shopmesh/logging"
)

// DefaultTTL is the default freshness window for cached recommendations.
const DefaultTTL = time.Hour

// Summarizer supplies behavior summaries; implemented by behavior.Aggregator.
type Summarizer interface {
	Summarize(identity string) core.BehaviorSummary
}

// WishlistReader exposes the product ids wishlisted by an identity;
// implemented by cart.Store. Wishlisted products are excluded from
// recommendations.
type WishlistReader interface {
	WishlistProductIDs(identity string) []string
}

// cacheEntry memoizes one identity's computed list. A single entry exists per
// identity and is overwritten wholesale on recompute.
type cacheEntry struct {
	products   []core.Product
	computedAt time.Time
}

// expired reports whether the entry's age exceeds ttl at the given instant.
func (e cacheEntry) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.computedAt) >= ttl
}

// Engine computes per-identity product recommendations with lazy TTL caching.
type Engine struct {
	mu       sync.RWMutex
	cache    map[string]cacheEntry
	catalog  *catalog.Snapshot
	behavior Summarizer
	wishlist WishlistReader
	ttl      time.Duration
	logger   logging.Logger
	now      func() time.Time
}

// Option mutates Engine construction settings.
type Option func(*Engine)

// WithTTL overrides the cache freshness window (default one hour).
func WithTTL(ttl time.Duration) Option {
	return func(e *Engine) { e.ttl = ttl }
}

// WithLogger injects a logger; defaults to NoOpLogger.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock overrides the time source; intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine constructs a recommendation engine over the snapshot, summarizer
// and wishlist reader.
func NewEngine(snapshot *catalog.Snapshot, summarizer Summarizer, wishlist WishlistReader, opts ...Option) *Engine {
	e := &Engine{
		cache:    make(map[string]cacheEntry),
		catalog:  snapshot,
		behavior: summarizer,
		wishlist: wishlist,
		ttl:      DefaultTTL,
		logger:   logging.NoOpLogger{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommendations returns up to count products ranked for identity. A fresh
// cache entry is returned unchanged, identical ordering included; otherwise
// the list is recomputed and the cache entry overwritten. Internal failures
// yield an empty list and a log record, never an error to the caller.
func (e *Engine) Recommendations(identity string, count int) (products []core.Product) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("recommendation scoring failed", "identity", identity, "cause", r)
			products = []core.Product{}
		}
	}()

	now := e.now()

	e.mu.RLock()
	entry, ok := e.cache[identity]
	e.mu.RUnlock()
	if ok && !entry.expired(now, e.ttl) {
		e.logger.Debug("recommendation cache hit", "identity", identity, "age", now.Sub(entry.computedAt))
		return copyProducts(entry.products)
	}

	ranked := e.compute(identity, count)

	e.mu.Lock()
	e.cache[identity] = cacheEntry{products: ranked, computedAt: now}
	e.mu.Unlock()
	e.logger.Debug("recommendation cache overwrite", "identity", identity, "count", len(ranked))

	return copyProducts(ranked)
}

// Invalidate drops the cached entry for identity, forcing the next read to
// recompute.
func (e *Engine) Invalidate(identity string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.cache, identity)
}

// compute scores the catalog for identity and returns the top count products.
func (e *Engine) compute(identity string, count int) []core.Product {
	summary := e.behavior.Summarize(identity)

	excluded := make(map[string]struct{})
	for _, id := range e.wishlist.WishlistProductIDs(identity) {
		excluded[id] = struct{}{}
	}

	categoryCounts := affinityCounts(summary.TopCategories)
	brandCounts := affinityCounts(summary.TopBrands)

	type scored struct {
		product core.Product
		score   float64
	}
	var candidates []scored
	e.catalog.Range(func(p core.Product) bool {
		if _, skip := excluded[p.ID]; skip {
			return true
		}
		candidates = append(candidates, scored{product: p, score: score(p, categoryCounts, brandCounts, summary.AvgPricePreference)})
		return true
	})

	// Stable: ties keep catalog iteration order.
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	if count < 0 {
		count = 0
	}
	if count > len(candidates) {
		count = len(candidates)
	}
	ranked := make([]core.Product, 0, count)
	for _, c := range candidates[:count] {
		ranked = append(ranked, c.product)
	}
	return ranked
}

// score applies the affinity + attribute formula. An empty summary leaves
// only the rating/review/stock/featured terms (no affinity applied).
func score(p core.Product, categoryCounts, brandCounts map[string]int, avgPrice *float64) float64 {
	var s float64
	if c, ok := categoryCounts[p.Category]; ok {
		s += 10 * float64(c)
	}
	if brand, ok := brandInName(p.Name, brandCounts); ok {
		s += 5 * float64(brandCounts[brand])
	}
	if avgPrice != nil {
		if v := 100 - abs(p.Price-*avgPrice)/100; v > 0 {
			s += v
		}
	}
	s += 5 * p.Rating
	s += min(float64(p.Reviews)/1000, 10)
	if p.InStock {
		s += 20
	}
	if p.Featured {
		s += 15
	}
	return s
}

// brandInName reports the first known top-brand token appearing in the
// product name.
func brandInName(name string, brandCounts map[string]int) (string, bool) {
	lowered := strings.ToLower(name)
	for _, brand := range behavior.BrandKeywords {
		if _, known := brandCounts[brand]; !known {
			continue
		}
		if strings.Contains(lowered, brand) {
			return brand, true
		}
	}
	return "", false
}

func affinityCounts(affinities []core.Affinity) map[string]int {
	out := make(map[string]int, len(affinities))
	for _, a := range affinities {
		out[a.Name] = a.Count
	}
	return out
}

func copyProducts(products []core.Product) []core.Product {
	out := make([]core.Product, len(products))
	copy(out, products)
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
