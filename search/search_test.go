package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/shopmesh/internal/testutil"
)

func testSearcher() *KeywordSearcher {
	return NewKeywordSearcher(testutil.MustSnapshot(
		testutil.NewProductBuilder("p1", "Laptops").Name("Dell XPS 13").Build(),
		testutil.NewProductBuilder("p2", "Laptops").Name("Apple MacBook Air").Build(),
		testutil.NewProductBuilder("p3", "Headphones").Name("Sony WH-1000XM5").Build(),
	))
}

func TestKeywordSearcher_RanksByTokenHits(t *testing.T) {
	s := testSearcher()
	got, err := s.Search(context.Background(), "dell laptops", 5)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	// Two token hits (name + category) outrank one (category only).
	assert.Equal(t, "p1", got[0].ID)
}

func TestKeywordSearcher_NoMatch(t *testing.T) {
	s := testSearcher()
	got, err := s.Search(context.Background(), "garden furniture", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestKeywordSearcher_LimitsResults(t *testing.T) {
	s := testSearcher()
	got, err := s.Search(context.Background(), "laptops", 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestKeywordSearcher_CancelledContext(t *testing.T) {
	s := testSearcher()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Search(ctx, "laptops", 5)
	assert.Error(t, err)
}
