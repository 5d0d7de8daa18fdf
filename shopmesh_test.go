package shopmesh

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/shopmesh/internal/testutil"
	"github.com/hupe1980/shopmesh/model"
	"github.com/hupe1980/shopmesh/search"
	"github.com/hupe1980/shopmesh/session"
	"github.com/hupe1980/shopmesh/store"
)

func TestNew_DefaultsAreUsable(t *testing.T) {
	snapshot := testutil.MustSnapshot(
		testutil.NewProductBuilder("p1", "Laptops").Name("Dell XPS 13").Price(1000).Rating(4.8).Reviews(1500).Featured().Build(),
		testutil.NewProductBuilder("p2", "Headphones").Name("Sony WH-1000XM5").Price(350).Rating(4.6).Reviews(8000).Build(),
	)
	mesh := New(snapshot)
	require.NotNil(t, mesh.Assistant)

	// Works without any collaborator configured.
	got := mesh.Assistant.Recommendations("u1", 2)
	assert.Len(t, got, 2)
	assert.NotEmpty(t, mesh.Assistant.Trending("", 5))
}

func TestNew_EndToEndConversation(t *testing.T) {
	snapshot := testutil.MustSnapshot(
		testutil.NewProductBuilder("p1", "Laptops").Name("Dell XPS 13").Price(1000).Build(),
		testutil.NewProductBuilder("p2", "Headphones").Name("Sony WH-1000XM5").Price(350).Build(),
	)
	mockModel := model.NewMockModel("test", "mock")
	mesh := New(snapshot, func(o *Options) {
		o.Searcher = search.NewKeywordSearcher(snapshot)
		o.Users = store.NewInMemoryStore()
		o.Model = mockModel
	})
	ctx := context.Background()

	reply := mesh.Assistant.Connect(ctx, "alice@example.com")
	assert.Contains(t, reply, "What should I call you?")

	reply = mesh.Assistant.Chat(ctx, "alice@example.com", "my name is Alice")
	assert.Contains(t, reply, "**Alice**")
	assert.Equal(t, session.PhaseReady, mesh.Sessions.Get("alice@example.com").Phase)

	reply = mesh.Assistant.SearchProducts(ctx, "alice@example.com", "sony headphones")
	assert.Contains(t, reply, "Sony WH-1000XM5")

	reply = mesh.Assistant.AddToCart(ctx, "alice@example.com", "p2", 1)
	assert.Contains(t, reply, "Sony WH-1000XM5")
	assert.InDelta(t, 350.0, mesh.Assistant.ViewCart("alice@example.com").Total, 0.001)

	// A reconnect after reset finds the mirrored name.
	mesh.Assistant.Reset("alice@example.com")
	reply = mesh.Assistant.Connect(ctx, "alice@example.com")
	assert.Contains(t, reply, "Welcome back, **Alice**")
}
