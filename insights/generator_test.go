package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revsight/revsight/ai/mock"
	"github.com/revsight/revsight/core"
	"github.com/revsight/revsight/storage"
	"github.com/revsight/revsight/storage/badger"
)

func setupRepos(t *testing.T) (storage.ReviewRepository, storage.InsightRepository) {
	t.Helper()
	reviewRepo, insightRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		insightRepo.Close()
		reviewRepo.Close()
		backend.Close()
	})
	return reviewRepo, insightRepo
}

func seedEnriched(t *testing.T, repo storage.ReviewRepository, id string, rating float64, published time.Time, score float64, topics ...string) {
	t.Helper()
	ctx := context.Background()

	_, err := repo.PutReviews(ctx, &core.Review{
		ReviewID:    id,
		LocationID:  "JFK",
		Source:      core.SourceStructured,
		Rating:      rating,
		Text:        "text of " + id,
		PublishedAt: published,
		Language:    "en",
	})
	require.NoError(t, err)

	sentiment := core.SentimentNeutral
	if score > 0 {
		sentiment = core.SentimentPositive
	} else if score < 0 {
		sentiment = core.SentimentNegative
	}
	require.NoError(t, repo.PutEnrichment(ctx, &core.Enrichment{
		ReviewID:       id,
		Sentiment:      sentiment,
		SentimentScore: score,
		Topics:         topics,
		ProcessedAt:    published,
	}))
}

func TestComputeAggregates(t *testing.T) {
	reviewRepo, insightRepo := setupRepos(t)
	jan := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	seedEnriched(t, reviewRepo, "rv-1", 2, jan, -0.8, "wait time", "staff")
	seedEnriched(t, reviewRepo, "rv-2", 1, jan.Add(time.Hour), -0.6, "wait time")
	seedEnriched(t, reviewRepo, "rv-3", 5, jan.Add(2*time.Hour), 0.9, "pricing")
	// Outside the window
	seedEnriched(t, reviewRepo, "rv-4", 4, jan.AddDate(0, 1, 0), 0.5, "pricing")

	gen, err := NewGenerator(reviewRepo, insightRepo, mock.NewMockGenerator())
	require.NoError(t, err)

	insight, err := gen.Compute(context.Background(), "JFK", "2026-01")
	require.NoError(t, err)

	assert.Equal(t, "JFK", insight.LocationID)
	assert.Equal(t, "2026-01", insight.Window)
	assert.Equal(t, 3, insight.ReviewCount, "february review excluded")
	assert.NotEmpty(t, insight.GeneratedSummary)

	// Topic frequency counts every occurrence
	require.NotEmpty(t, insight.TopTopics)
	assert.Equal(t, core.TopicCount{Topic: "wait time", Count: 2}, insight.TopTopics[0])

	// Drivers ranked by impact magnitude; wait time sums to -1.4
	require.NotEmpty(t, insight.KeyDrivers)
	assert.Equal(t, "wait time", insight.KeyDrivers[0].Topic)
	assert.InDelta(t, -1.4, insight.KeyDrivers[0].Impact, 1e-9)

	// Quotes cover positive and negative separately
	var posQuotes, negQuotes int
	for _, q := range insight.RepresentativeQuotes {
		if q.SentimentScore > 0 {
			posQuotes++
		} else {
			negQuotes++
		}
	}
	assert.Equal(t, 1, posQuotes)
	assert.Equal(t, 2, negQuotes)
}

func TestCachedSemantics(t *testing.T) {
	reviewRepo, insightRepo := setupRepos(t)
	gen, err := NewGenerator(reviewRepo, insightRepo, mock.NewMockGenerator())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("absent key yields nil without error", func(t *testing.T) {
		insight, err := gen.Cached(ctx, "JFK", "2026-01")
		require.NoError(t, err)
		assert.Nil(t, insight)
	})

	t.Run("cached returns the computed value", func(t *testing.T) {
		jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		seedEnriched(t, reviewRepo, "rv-1", 4, jan, 0.5, "pricing")

		computed, err := gen.Compute(ctx, "JFK", "2026-01")
		require.NoError(t, err)

		cached, err := gen.Cached(ctx, "JFK", "2026-01")
		require.NoError(t, err)
		require.NotNil(t, cached)
		assert.Equal(t, computed.ReviewCount, cached.ReviewCount)
		assert.Equal(t, computed.GeneratedSummary, cached.GeneratedSummary)
	})

	t.Run("invalid window rejected", func(t *testing.T) {
		_, err := gen.Cached(ctx, "JFK", "whenever")
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("empty location rejected", func(t *testing.T) {
		_, err := gen.Cached(ctx, "", "2026-01")
		assert.ErrorIs(t, err, ErrEmptyLocation)
	})
}

func TestComputeNeverReturnsStaleValue(t *testing.T) {
	reviewRepo, insightRepo := setupRepos(t)
	gen, err := NewGenerator(reviewRepo, insightRepo, mock.NewMockGenerator())
	require.NoError(t, err)
	ctx := context.Background()

	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	seedEnriched(t, reviewRepo, "rv-1", 4, jan, 0.5, "pricing")

	first, err := gen.Compute(ctx, "JFK", "2026-01")
	require.NoError(t, err)
	assert.Equal(t, 1, first.ReviewCount)

	// New data lands between calls
	seedEnriched(t, reviewRepo, "rv-2", 1, jan.Add(time.Hour), -0.9, "wait time")

	second, err := gen.Compute(ctx, "JFK", "2026-01")
	require.NoError(t, err)
	assert.Equal(t, 2, second.ReviewCount, "compute must reflect current data")

	// The cache now holds the latest computation
	cached, err := gen.Cached(ctx, "JFK", "2026-01")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, 2, cached.ReviewCount)
}

func TestComputeNarrativeFailurePropagates(t *testing.T) {
	reviewRepo, insightRepo := setupRepos(t)

	remoteErr := errors.New("model unavailable")
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string, maxTokens int) (string, error) {
		return "", remoteErr
	}

	gen, err := NewGenerator(reviewRepo, insightRepo, generator)
	require.NoError(t, err)

	_, err = gen.Compute(context.Background(), "JFK", "2026-01")
	assert.ErrorIs(t, err, remoteErr)

	// A failed compute must not plant a cache entry
	cached, err := gen.Cached(context.Background(), "JFK", "2026-01")
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestComputePromptUsesAggregatesOnly(t *testing.T) {
	reviewRepo, insightRepo := setupRepos(t)
	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	seedEnriched(t, reviewRepo, "rv-1", 2, jan, -0.7, "wait time")

	generator := mock.NewMockGenerator()
	gen, err := NewGenerator(reviewRepo, insightRepo, generator)
	require.NoError(t, err)

	_, err = gen.Compute(context.Background(), "JFK", "2026-01")
	require.NoError(t, err)

	prompt := generator.LastPrompt()
	assert.Contains(t, prompt, "wait time")
	assert.NotContains(t, prompt, "text of rv-1", "raw review text must stay out of the prompt")
	assert.Equal(t, narrativeMaxTokens, generator.LastMaxTokens())
}
