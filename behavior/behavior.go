// Package behavior records per-identity search events and derives affinity
// summaries from them on demand.
//
// Summaries are never cached or persisted: every Summarize call re-derives
// the result from the full retained event list, which costs
// O(events x catalog size). With the 100-event retention cap this is a
// deliberate scalability bound, not an oversight; callers needing cheaper
// reads should cache downstream (the recommendation scorer does).
package behavior

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/shopmesh/catalog"
	"github.com/hupe1980/shopmesh/core"
	"github.com/hupe1980/shopmesh/logging"
)

// EventLimit caps retained search events per identity; the oldest are
// evicted first.
const EventLimit = 100

// topAffinities is the number of count-ranked categories/brands reported.
const topAffinities = 3

// BrandKeywords is the fixed brand vocabulary matched against queries and
// product names. Matching is case-insensitive substring.
var BrandKeywords = []string{
	"apple", "samsung", "sony", "dell", "hp", "lenovo", "asus",
	"lg", "canon", "nikon", "bose", "jbl", "nike", "adidas", "puma",
}

// pricePattern captures the amount from price-intent phrasings such as
// "under 500", "below 1000" or "less than 250.50".
var pricePattern = regexp.MustCompile(`(?i)\b(?:under|below|less than)\s*\$?(\d+(?:\.\d+)?)`)

// Aggregator retains search events keyed by identity and recomputes
// BehaviorSummary values from them. The mutex protects map integrity only;
// same-identity calls are expected to come from a single conversation.
type Aggregator struct {
	mu      sync.RWMutex
	events  map[string][]core.SearchEvent
	catalog *catalog.Snapshot
	logger  logging.Logger
	now     func() time.Time
}

// Option mutates Aggregator construction settings.
type Option func(*Aggregator)

// WithLogger injects a logger; defaults to NoOpLogger.
func WithLogger(l logging.Logger) Option {
	return func(a *Aggregator) { a.logger = l }
}

// WithClock overrides the time source; intended for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// NewAggregator constructs an aggregator over the given catalog snapshot.
func NewAggregator(snapshot *catalog.Snapshot, opts ...Option) *Aggregator {
	a := &Aggregator{
		events:  make(map[string][]core.SearchEvent),
		catalog: snapshot,
		logger:  logging.NoOpLogger{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Track appends a search event for identity, evicting the oldest entries
// beyond EventLimit. It never fails.
func (a *Aggregator) Track(identity, query string, resultCount int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	events := append(a.events[identity], core.SearchEvent{
		Query:       query,
		Timestamp:   a.now(),
		ResultCount: resultCount,
	})
	if overflow := len(events) - EventLimit; overflow > 0 {
		events = append(events[:0], events[overflow:]...)
	}
	a.events[identity] = events
	a.logger.Debug("search tracked", "identity", identity, "retained", len(events))
}

// Events returns a copy of the retained search events for identity, oldest
// first.
func (a *Aggregator) Events(identity string) []core.SearchEvent {
	a.mu.RLock()
	defer a.mu.RUnlock()
	stored := a.events[identity]
	out := make([]core.SearchEvent, len(stored))
	copy(out, stored)
	return out
}

// Summarize derives a BehaviorSummary from the full retained event list.
// Identities with zero tracked searches get the zero summary.
func (a *Aggregator) Summarize(identity string) core.BehaviorSummary {
	events := a.Events(identity)
	if len(events) == 0 {
		return core.BehaviorSummary{}
	}

	categories := a.orderedCategories()
	categoryCounts := newTally(categories)
	brandCounts := newTally(BrandKeywords)
	var priceSum float64
	var priceMatches int

	for _, ev := range events {
		query := strings.ToLower(ev.Query)
		for _, category := range categories {
			if categoryMatches(query, category) {
				categoryCounts.add(category)
			}
		}
		for _, brand := range BrandKeywords {
			if strings.Contains(query, brand) {
				brandCounts.add(brand)
			}
		}
		for _, m := range pricePattern.FindAllStringSubmatch(ev.Query, -1) {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				priceSum += v
				priceMatches++
			}
		}
	}

	summary := core.BehaviorSummary{
		SearchCount:   len(events),
		TopCategories: categoryCounts.top(topAffinities),
		TopBrands:     brandCounts.top(topAffinities),
	}
	if priceMatches > 0 {
		avg := priceSum / float64(priceMatches)
		summary.AvgPricePreference = &avg
	}
	last := events[len(events)-1].Timestamp
	summary.LastSearch = &last
	return summary
}

// orderedCategories scans the catalog and returns unique categories in
// first-encountered order, which also fixes tie-break order for rankings.
func (a *Aggregator) orderedCategories() []string {
	seen := make(map[string]struct{})
	var out []string
	a.catalog.Range(func(p core.Product) bool {
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			out = append(out, p.Category)
		}
		return true
	})
	return out
}

// categoryMatches reports whether any token of the category appears in the
// lower-cased query.
func categoryMatches(loweredQuery, category string) bool {
	for _, token := range strings.Fields(strings.ToLower(category)) {
		if strings.Contains(loweredQuery, token) {
			return true
		}
	}
	return false
}

// tally counts names against a fixed canonical order (catalog category
// first-encounter order, or the BrandKeywords list) used for tie-breaking.
type tally struct {
	counts map[string]int
	order  []string
}

func newTally(order []string) *tally {
	return &tally{counts: make(map[string]int), order: order}
}

func (t *tally) add(name string) {
	t.counts[name]++
}

// top returns the n highest counts as Affinity values; ties keep canonical
// order regardless of which event matched first.
func (t *tally) top(n int) []core.Affinity {
	ranked := make([]core.Affinity, 0, len(t.order))
	for _, name := range t.order {
		if c := t.counts[name]; c > 0 {
			ranked = append(ranked, core.Affinity{Name: name, Count: c})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
