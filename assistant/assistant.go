package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/shopmesh/behavior"
	"github.com/hupe1980/shopmesh/cart"
	"github.com/hupe1980/shopmesh/catalog"
	"github.com/hupe1980/shopmesh/core"
	resolver "github.com/hupe1980/shopmesh/identity"
	"github.com/hupe1980/shopmesh/logging"
	"github.com/hupe1980/shopmesh/model"
	"github.com/hupe1980/shopmesh/recommend"
	"github.com/hupe1980/shopmesh/session"
)

const (
	// searchResultLimit bounds free-text product searches.
	searchResultLimit = 5
	// lookupLimit is used for single-product resolution (availability,
	// details, comparison).
	lookupLimit = 1
	// filterDisplayLimit caps the rows rendered by FilterProducts; the match
	// count in the heading still reflects every match.
	filterDisplayLimit = 10
	// compareMinProducts is the smallest comparison that makes sense.
	compareMinProducts = 2
	// nameMaxLen caps accepted display names.
	nameMaxLen = 50
)

// Options configures the Assistant. Sessions, Behavior, Recommender, Cart and
// Catalog are required; Searcher, Users and Model are optional collaborators
// whose absence degrades the respective features gracefully.
type Options struct {
	Sessions    *session.Manager
	Behavior    *behavior.Aggregator
	Recommender *recommend.Engine
	Cart        *cart.Store
	Catalog     *catalog.Snapshot

	// Searcher resolves free text to products; nil disables product lookup.
	Searcher core.SemanticSearcher
	// Users mirrors display names across restarts; nil keeps names in-memory.
	Users core.UserStore
	// Model generates conversational replies; nil yields the apology text.
	Model model.Model

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Assistant is the boundary adapter exposing ShopMesh's conversational
// operations. Every method returns a display-ready value and never an error:
// internal failures are logged with a diagnostic reference and converted to
// user-safe text.
type Assistant struct {
	sessions    *session.Manager
	behavior    *behavior.Aggregator
	recommender *recommend.Engine
	cart        *cart.Store
	catalog     *catalog.Snapshot
	searcher    core.SemanticSearcher
	users       core.UserStore
	llm         model.Model
	logger      logging.Logger
}

// New constructs an Assistant from the given options.
func New(opts Options) *Assistant {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Assistant{
		sessions:    opts.Sessions,
		behavior:    opts.Behavior,
		recommender: opts.Recommender,
		cart:        opts.Cart,
		catalog:     opts.Catalog,
		searcher:    opts.Searcher,
		users:       opts.Users,
		llm:         opts.Model,
		logger:      logger,
	}
}

// Connect starts (or resumes) a conversation for identity. A display name
// known to the user store lands the session directly in READY with a welcome
// text; otherwise the session awaits a name. Store failures degrade to an
// in-memory-only session.
func (a *Assistant) Connect(ctx context.Context, identity string) string {
	var known string
	if a.users != nil {
		rec, err := a.users.Load(ctx, identity)
		switch {
		case err == nil:
			known = rec.DisplayName
		case errors.Is(err, core.ErrNotFound):
			// first visit
		default:
			a.degrade("user-store", err)
			a.sessions.Connect(identity, "")
			return textConnectDegraded
		}
	}
	st := a.sessions.Connect(identity, known)
	if st.Phase == session.PhaseReady {
		return fmt.Sprintf(textWelcomeBack, st.DisplayName)
	}
	return fmt.Sprintf(textAskForName, identity)
}

// ResolveName attempts to extract a display name from text. While the
// session awaits a name the full cascade applies (templates, then bare
// text); afterwards only explicit phrasings ("call me X") are honored so
// ordinary chat is never mistaken for a rename. The name write to the user
// store is best effort.
func (a *Assistant) ResolveName(ctx context.Context, identity, text string) string {
	if strings.TrimSpace(text) == "" {
		return textNameInvalid
	}
	st := a.sessions.Get(identity)

	var name string
	var ok bool
	if st.Phase == session.PhaseAwaitingName {
		name, ok = resolver.Extract(text)
	} else {
		name, ok = resolver.FromTemplate(text)
	}
	if !ok {
		if st.Phase == session.PhaseAwaitingName {
			return textNameNotCaught
		}
		return textNameInvalid
	}
	if len(name) > nameMaxLen {
		return textNameTooLong
	}

	a.sessions.ResolveName(identity, name)

	if a.users != nil {
		if err := a.users.SaveName(ctx, identity, name); err != nil {
			a.degrade("user-store", err)
			return fmt.Sprintf(textNameSession, name)
		}
		return fmt.Sprintf(textNameSaved, name)
	}
	return fmt.Sprintf(textNameSession, name)
}

// Chat handles one conversational turn. Sessions still onboarding are routed
// through Connect / ResolveName; READY sessions get the turn appended,
// forwarded to the model and the reply recorded. A model failure leaves the
// user turn in history without a matching assistant turn and returns the
// apology text.
func (a *Assistant) Chat(ctx context.Context, identity, text string) string {
	st := a.sessions.Get(identity)
	switch st.Phase {
	case session.PhaseAnonymous:
		return a.Connect(ctx, identity)
	case session.PhaseAwaitingName:
		return a.ResolveName(ctx, identity, text)
	}

	a.sessions.AppendTurn(identity, core.RoleUser, text)

	if a.llm == nil {
		return textChatApology
	}
	req := model.Request{
		Instructions: a.systemPreamble(st.DisplayName),
		Messages:     a.sessions.History(identity),
	}
	resp, err := a.llm.Generate(ctx, req)
	if err != nil {
		a.degrade("llm", err)
		return textChatApology
	}
	a.sessions.AppendTurn(identity, core.RoleAssistant, resp.Text)
	return resp.Text
}

// TrackSearch records a search event for identity.
func (a *Assistant) TrackSearch(identity, query string, resultCount int) {
	a.behavior.Track(identity, query, resultCount)
}

// Summary returns the derived behavior summary for identity.
func (a *Assistant) Summary(identity string) core.BehaviorSummary {
	return a.behavior.Summarize(identity)
}

// SearchProducts resolves a free-text query against the semantic searcher,
// tracks the search and renders the matches. Search failures map to "no
// match" plus a diagnostic record.
func (a *Assistant) SearchProducts(ctx context.Context, identity, query string) string {
	if a.searcher == nil {
		a.behavior.Track(identity, query, 0)
		return textSearchNoMatch
	}
	products, err := a.searcher.Search(ctx, query, searchResultLimit)
	if err != nil {
		a.degrade("semantic-search", err)
		a.behavior.Track(identity, query, 0)
		return textSearchFailed
	}
	a.behavior.Track(identity, query, len(products))
	if len(products) == 0 {
		return textSearchNoMatch
	}
	return "### Product Search Results\n\n" + renderProductTable(products)
}

// FilterProducts scans the catalog for products matching the category
// substring (case-insensitive), the price range and the stock constraint,
// keeping catalog order. A maxPrice of zero or below means no upper bound.
func (a *Assistant) FilterProducts(category string, minPrice, maxPrice float64, inStockOnly bool) string {
	lowered := strings.ToLower(category)
	var matches []core.Product
	a.catalog.Range(func(p core.Product) bool {
		if p.Price < minPrice {
			return true
		}
		if maxPrice > 0 && p.Price > maxPrice {
			return true
		}
		if inStockOnly && !p.InStock {
			return true
		}
		if lowered != "" && !strings.Contains(strings.ToLower(p.Category), lowered) {
			return true
		}
		matches = append(matches, p)
		return true
	})
	if len(matches) == 0 {
		return textFilterNoMatch
	}
	shown := matches
	if len(shown) > filterDisplayLimit {
		shown = shown[:filterDisplayLimit]
	}
	return fmt.Sprintf("### Filtered Products (%d found)\n\n", len(matches)) + renderFilterTable(shown)
}

// CompareProducts resolves each name via semantic search (k=1) and renders
// the found products side by side. Names that resolve to nothing are skipped;
// fewer than two resolved products yields a guidance text.
func (a *Assistant) CompareProducts(ctx context.Context, productNames []string) string {
	if len(productNames) < compareMinProducts {
		return textCompareTooFew
	}
	chosen := make([]core.Product, 0, len(productNames))
	for _, name := range productNames {
		if p, ok := a.lookupProduct(ctx, name); ok {
			chosen = append(chosen, p)
		}
	}
	if len(chosen) < compareMinProducts {
		return textCompareNotEnough
	}
	return "### Product Comparison\n\n" + renderComparisonTable(chosen)
}

// Recommendations returns up to count products ranked for identity.
func (a *Assistant) Recommendations(identity string, count int) []core.Product {
	return a.recommender.Recommendations(identity, count)
}

// Trending returns the catalog-wide trending list, optionally filtered by
// category substring.
func (a *Assistant) Trending(categoryFilter string, limit int) []core.Product {
	return recommend.Trending(a.catalog, categoryFilter, limit)
}

// AddToCart adds quantity units of productID to the identity's cart.
func (a *Assistant) AddToCart(ctx context.Context, identity, productID string, quantity int) string {
	total, err := a.cart.AddToCart(ctx, identity, productID, quantity)
	switch {
	case err == nil:
		product, _ := a.catalog.Get(productID)
		return fmt.Sprintf(textCartAdded, quantity, product.Name, total)
	case core.IsValidation(err):
		return textCartBadQuantity
	case errors.Is(err, core.ErrOutOfStock):
		return textCartOutOfStock
	case errors.Is(err, core.ErrNotFound):
		return textCartNotFound
	default:
		a.degrade("cart", err)
		return textCartNotFound
	}
}

// RemoveFromCart removes the productID entry from the identity's cart.
func (a *Assistant) RemoveFromCart(ctx context.Context, identity, productID string) string {
	if !a.cart.RemoveFromCart(ctx, identity, productID) {
		return textCartNotInCart
	}
	return fmt.Sprintf(textCartRemoved, a.productName(productID))
}

// ViewCart returns the catalog-joined cart with its running total.
func (a *Assistant) ViewCart(identity string) core.CartView {
	return a.cart.Cart(identity)
}

// AddToWishlist inserts productID into the identity's wishlist; duplicates
// are signaled, not errors.
func (a *Assistant) AddToWishlist(ctx context.Context, identity, productID string) string {
	if !a.cart.AddToWishlist(ctx, identity, productID) {
		return fmt.Sprintf(textWishlistDuplicate, a.productName(productID))
	}
	return fmt.Sprintf(textWishlistAdded, a.productName(productID))
}

// RemoveFromWishlist removes productID from the identity's wishlist; absent
// entries are signaled, not errors.
func (a *Assistant) RemoveFromWishlist(ctx context.Context, identity, productID string) string {
	if !a.cart.RemoveFromWishlist(ctx, identity, productID) {
		return textWishlistAbsent
	}
	return fmt.Sprintf(textWishlistRemoved, a.productName(productID))
}

// ViewWishlist returns the catalog-joined wishlist.
func (a *Assistant) ViewWishlist(identity string) []core.Product {
	return a.cart.Wishlist(identity)
}

// CheckAvailability resolves productName via semantic search (k=1) and
// reports stock status.
func (a *Assistant) CheckAvailability(ctx context.Context, productName string) string {
	product, ok := a.lookupProduct(ctx, productName)
	if !ok {
		return fmt.Sprintf(textProductNotFound, productName)
	}
	if product.InStock {
		return fmt.Sprintf(textInStock, product.Name, product.Price)
	}
	return fmt.Sprintf(textOutOfStock, product.Name)
}

// ProductDetails resolves productName via semantic search (k=1) and renders
// a detail card.
func (a *Assistant) ProductDetails(ctx context.Context, productName string) string {
	product, ok := a.lookupProduct(ctx, productName)
	if !ok {
		return fmt.Sprintf(textProductNotFound, productName)
	}
	return renderProductDetails(product)
}

// PolicyInfo answers store-policy questions from the canned policy table.
func (a *Assistant) PolicyInfo(topic string) string {
	return lookupPolicy(topic)
}

// Reset deletes all session state for identity; the next interaction starts
// over anonymously.
func (a *Assistant) Reset(identity string) {
	a.sessions.Reset(identity)
}

// lookupProduct resolves a product by name through the searcher. Failures
// and misses both map to "no match".
func (a *Assistant) lookupProduct(ctx context.Context, productName string) (core.Product, bool) {
	if a.searcher == nil {
		return core.Product{}, false
	}
	products, err := a.searcher.Search(ctx, productName, lookupLimit)
	if err != nil {
		a.degrade("semantic-search", err)
		return core.Product{}, false
	}
	if len(products) == 0 {
		return core.Product{}, false
	}
	return products[0], true
}

// productName resolves an id to its catalog name, falling back to the id for
// entries missing from the snapshot.
func (a *Assistant) productName(productID string) string {
	if p, ok := a.catalog.Get(productID); ok {
		return p.Name
	}
	return productID
}

// systemPreamble builds the optional instruction block naming the resolved
// identity.
func (a *Assistant) systemPreamble(displayName string) string {
	if displayName == "" {
		return "You are a helpful shopping assistant."
	}
	return fmt.Sprintf("You are a helpful shopping assistant. The customer's name is %s.", displayName)
}

// degrade records a collaborator failure as a local diagnostic and returns
// the reference id included in the log entry.
func (a *Assistant) degrade(collaborator string, err error) string {
	ref := core.NewID()
	a.logger.Error("collaborator failure", "ref", ref, "error", core.NewCollaboratorError(collaborator, err))
	return ref
}
