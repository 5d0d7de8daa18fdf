package core

import (
	"time"

	"github.com/google/uuid"
)

// NewID generates a unique identifier suitable for diagnostic references and
// event correlation.
func NewID() string {
	return uuid.New().String()
}

// Conversation roles. The history tolerates unpaired trailing entries: a
// cancelled turn may leave a user message without an assistant reply.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversational turn. After emission it should be
// treated as immutable.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Product is a read-only catalog record. The schema is validated once at
// catalog load; components never re-check fields defensively.
type Product struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=5"`
	Reviews  int     `json:"reviews" validate:"gte=0"`
	InStock  bool    `json:"inStock"`
	Featured bool    `json:"featured"`
}

// SearchEvent records one tracked product search for an identity.
type SearchEvent struct {
	Query       string    `json:"query"`
	Timestamp   time.Time `json:"timestamp"`
	ResultCount int       `json:"result_count"`
}

// Affinity is a tallied count of how often past queries matched a category or
// brand keyword.
type Affinity struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// BehaviorSummary is a derived snapshot of an identity's search behavior. It
// is recomputed on every call and never persisted.
type BehaviorSummary struct {
	SearchCount        int        `json:"search_count"`
	TopCategories      []Affinity `json:"top_categories"` // at most 3, count-ranked
	TopBrands          []Affinity `json:"top_brands"`     // at most 3, count-ranked
	AvgPricePreference *float64   `json:"avg_price_preference,omitempty"`
	LastSearch         *time.Time `json:"last_search,omitempty"`
}

// Empty reports whether the summary was derived from zero tracked searches.
func (s BehaviorSummary) Empty() bool { return s.SearchCount == 0 }

// CartItem is one cart entry, unique per (identity, product).
type CartItem struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"` // never below 1
	AddedAt   time.Time `json:"added_at"`
}

// CartLine joins a cart entry against the catalog snapshot for display.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// CartView is the display-ready cart: joined lines plus the running total
// (sum of price x quantity across joined items).
type CartView struct {
	Lines []CartLine `json:"lines"`
	Total float64    `json:"total"`
}

// UserRecord is the document mirrored to a UserStore for one identity. The
// mirror is best effort; in-memory state remains authoritative for the life
// of the process.
type UserRecord struct {
	Identity    string   `json:"identity"`
	DisplayName string   `json:"display_name,omitempty"`
	Wishlist    []string `json:"wishlist,omitempty"`
}
