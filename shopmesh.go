// Package shopmesh provides a high-level façade over the assistant boundary
// and service abstractions (sessions, behavior analytics, recommendations,
// cart/wishlist & logging) enabling rapid construction of conversational
// shopping backends. Most applications interact with this package by:
//  1. Loading a catalog snapshot (catalog.Load / catalog.New)
//  2. Creating a ShopMesh via New() (optionally overriding default in-memory services)
//  3. Invoking assistant operations per inbound conversational request
//
// The façade delegates the per-operation behavior to assistant.Assistant
// while keeping setup and usage ergonomics concise. All defaults are safe for
// local development and testing; production deployments typically supply a
// durable user store (store/badgerstore), a real semantic search backend and
// a provider model (model/openai, model/anthropic).
package shopmesh

import (
	"time"

	"github.com/hupe1980/shopmesh/assistant"
	"github.com/hupe1980/shopmesh/behavior"
	"github.com/hupe1980/shopmesh/cart"
	"github.com/hupe1980/shopmesh/catalog"
	"github.com/hupe1980/shopmesh/core"
	"github.com/hupe1980/shopmesh/logging"
	"github.com/hupe1980/shopmesh/model"
	"github.com/hupe1980/shopmesh/recommend"
	"github.com/hupe1980/shopmesh/session"
)

// Options configures the ShopMesh instance.
type Options struct {
	// RecommendationTTL bounds cached recommendation freshness. Zero keeps
	// the one hour default.
	RecommendationTTL time.Duration

	// Collaborators (all optional; absence degrades the respective feature)
	Searcher core.SemanticSearcher
	Users    core.UserStore
	Model    model.Model

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// ShopMesh is the high-level façade aggregating the assistant and its
// component services for one catalog snapshot.
type ShopMesh struct {
	opts      Options
	snapshot  *catalog.Snapshot
	Sessions  *session.Manager
	Behavior  *behavior.Aggregator
	Cart      *cart.Store
	Recommend *recommend.Engine
	Assistant *assistant.Assistant
}

// New creates a new ShopMesh instance over the snapshot with optional
// overrides. Any unset service is initialized with an in-memory
// implementation.
func New(snapshot *catalog.Snapshot, optFns ...func(o *Options)) *ShopMesh {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	sessions := session.NewManager(session.WithLogger(opts.Logger))
	tracker := behavior.NewAggregator(snapshot, behavior.WithLogger(opts.Logger))
	carts := cart.NewStore(snapshot, cart.WithLogger(opts.Logger), cart.WithUserStore(opts.Users))

	recOpts := []recommend.Option{recommend.WithLogger(opts.Logger)}
	if opts.RecommendationTTL > 0 {
		recOpts = append(recOpts, recommend.WithTTL(opts.RecommendationTTL))
	}
	engine := recommend.NewEngine(snapshot, tracker, carts, recOpts...)

	a := assistant.New(assistant.Options{
		Sessions:    sessions,
		Behavior:    tracker,
		Recommender: engine,
		Cart:        carts,
		Catalog:     snapshot,
		Searcher:    opts.Searcher,
		Users:       opts.Users,
		Model:       opts.Model,
		Logger:      opts.Logger,
	})

	return &ShopMesh{
		opts:      opts,
		snapshot:  snapshot,
		Sessions:  sessions,
		Behavior:  tracker,
		Cart:      carts,
		Recommend: engine,
		Assistant: a,
	}
}

// Catalog returns the snapshot this instance serves.
func (m *ShopMesh) Catalog() *catalog.Snapshot { return m.snapshot }
