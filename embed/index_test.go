package embed

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

func setupRepo(t *testing.T) storage.ReviewRepository {
	t.Helper()
	reviewRepo, insightRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		insightRepo.Close()
		reviewRepo.Close()
		backend.Close()
	})
	return reviewRepo
}

func seedReview(t *testing.T, repo storage.ReviewRepository, id, text string) {
	t.Helper()
	_, err := repo.PutReviews(context.Background(), &core.Review{
		ReviewID:    id,
		LocationID:  "JFK",
		Source:      core.SourceStructured,
		Rating:      3,
		Text:        text,
		PublishedAt: time.Now().UTC(),
		Language:    "en",
	})
	require.NoError(t, err)
}

func TestIndexEmbedAndSearch(t *testing.T) {
	repo := setupRepo(t)
	seedReview(t, repo, "rv-1", "the shuttle took forever to arrive")
	seedReview(t, repo, "rv-2", "checkout was quick and painless")
	seedReview(t, repo, "rv-3", "prices were reasonable for the area")

	index, err := NewIndex(repo, mock.NewMockEmbedder())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, index.Embed(ctx, "rv-1", "the shuttle took forever to arrive"))
	require.NoError(t, index.Embed(ctx, "rv-2", "checkout was quick and painless"))
	require.NoError(t, index.Embed(ctx, "rv-3", "prices were reasonable for the area"))

	// The mock embedder is deterministic, so a query identical to a
	// stored text must match itself with similarity 1.0 and rank first.
	results, err := index.Search(ctx, "checkout was quick and painless", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "rv-2", results[0].Review.ReviewID)
	assert.InDelta(t, 1.0, float64(results[0].Score), 1e-4)

	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i].Score, results[i-1].Score,
			"results must be ordered by descending similarity")
	}
}

func TestIndexSearchTruncatesToK(t *testing.T) {
	repo := setupRepo(t)
	index, err := NewIndex(repo, mock.NewMockEmbedder())
	require.NoError(t, err)

	ctx := context.Background()
	for _, id := range []string{"rv-1", "rv-2", "rv-3", "rv-4"} {
		seedReview(t, repo, id, "text for "+id)
		require.NoError(t, index.Embed(ctx, id, "text for "+id))
	}

	results, err := index.Search(ctx, "text for rv-1", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestIndexRemoteFailurePropagates(t *testing.T) {
	repo := setupRepo(t)

	remoteErr := errors.New("embedding service down")
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, remoteErr
	}

	index, err := NewIndex(repo, embedder)
	require.NoError(t, err)

	err = index.Embed(context.Background(), "rv-1", "some text")
	assert.ErrorIs(t, err, remoteErr)

	_, err = index.Search(context.Background(), "query", 5)
	assert.ErrorIs(t, err, remoteErr)
}

func TestIndexDimensionMismatchIsFatal(t *testing.T) {
	repo := setupRepo(t)
	seedReview(t, repo, "rv-1", "first review")
	seedReview(t, repo, "rv-2", "second review")

	dims := map[string]int{"first review": 8, "second review": 16}
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		v := make([]float32, dims[text])
		v[0] = 1
		return v, nil
	}

	index, err := NewIndex(repo, embedder)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, index.Embed(ctx, "rv-1", "first review"))

	err = index.Embed(ctx, "rv-2", "second review")
	assert.ErrorIs(t, err, storage.ErrDimensionMismatch)
}

func TestNewIndexValidation(t *testing.T) {
	repo := setupRepo(t)

	_, err := NewIndex(nil, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, ErrRepositoryRequired)

	_, err = NewIndex(repo, nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}
