package enrich

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revsight/revsight/ai"
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

func seedReviews(t *testing.T, repo storage.ReviewRepository, ids ...string) {
	t.Helper()
	now := time.Now().UTC()
	reviews := make([]*core.Review, len(ids))
	for i, id := range ids {
		reviews[i] = &core.Review{
			ReviewID:    id,
			LocationID:  "JFK",
			Source:      core.SourceStructured,
			Rating:      3,
			Text:        "review body for " + id,
			PublishedAt: now,
			Language:    "en",
		}
	}
	_, err := repo.PutReviews(context.Background(), reviews...)
	require.NoError(t, err)
}

func TestProcessorEnrichesAllReviews(t *testing.T) {
	repo := setupRepo(t)
	seedReviews(t, repo, "rv-01", "rv-02", "rv-03")

	annotator := mock.NewMockAnnotator()
	var buf bytes.Buffer
	processor, err := NewProcessor(repo, annotator, &Config{BatchSize: 2}, &buf)
	require.NoError(t, err)

	result, err := processor.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Candidates)
	assert.Equal(t, 3, result.Enriched)
	assert.Equal(t, 0, result.FailedBatches)
	assert.Equal(t, 2, annotator.CallCount(), "3 reviews at batch size 2 means 2 calls")

	remaining, err := repo.GetUnenrichedReviews(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	enrichment, err := repo.GetEnrichment(context.Background(), "rv-01")
	require.NoError(t, err)
	assert.InDelta(t, 0, enrichment.SentimentScore, 1.0)
}

func TestProcessorBatchFailureIsolation(t *testing.T) {
	repo := setupRepo(t)
	// Keys scan lexicographically, so batches of 2 are
	// [rv-01 rv-02] [rv-03 rv-04] [rv-05].
	seedReviews(t, repo, "rv-01", "rv-02", "rv-03", "rv-04", "rv-05")

	remoteErr := errors.New("model unavailable")
	annotator := mock.NewMockAnnotator()
	fallback := mock.NewMockAnnotator()
	annotator.AnnotateFunc = func(ctx context.Context, requests []ai.AnnotationRequest) ([]ai.Annotation, error) {
		for _, req := range requests {
			if req.ReviewID == "rv-03" {
				return nil, remoteErr
			}
		}
		return fallback.Annotate(ctx, requests)
	}

	processor, err := NewProcessor(repo, annotator, &Config{BatchSize: 2}, &bytes.Buffer{})
	require.NoError(t, err)

	result, err := processor.Run(context.Background())
	require.NoError(t, err, "a failed batch must not fail the run")

	assert.Equal(t, 5, result.Candidates)
	assert.Equal(t, 3, result.Enriched, "batches 1 and 3 persist")
	assert.Equal(t, 1, result.FailedBatches)

	// Exactly the failed batch's reviews remain unenriched
	remaining, err := repo.GetUnenrichedReviews(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, "rv-03", remaining[0].ReviewID)
	assert.Equal(t, "rv-04", remaining[1].ReviewID)

	// A second run with a working annotator picks up only the leftovers
	processor2, err := NewProcessor(repo, mock.NewMockAnnotator(), &Config{BatchSize: 2}, &bytes.Buffer{})
	require.NoError(t, err)

	result2, err := processor2.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result2.Candidates)
	assert.Equal(t, 2, result2.Enriched)

	remaining, err = repo.GetUnenrichedReviews(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestProcessorResponseMismatchSkipsBatch(t *testing.T) {
	repo := setupRepo(t)
	seedReviews(t, repo, "rv-01", "rv-02")

	t.Run("subset response", func(t *testing.T) {
		annotator := mock.NewMockAnnotator()
		annotator.AnnotateFunc = func(ctx context.Context, requests []ai.AnnotationRequest) ([]ai.Annotation, error) {
			return []ai.Annotation{{
				ReviewID:  requests[0].ReviewID,
				Sentiment: "neutral",
			}}, nil
		}

		processor, err := NewProcessor(repo, annotator, nil, &bytes.Buffer{})
		require.NoError(t, err)

		result, err := processor.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, result.Enriched)
		assert.Equal(t, 1, result.FailedBatches)
	})

	t.Run("foreign review id", func(t *testing.T) {
		annotator := mock.NewMockAnnotator()
		annotator.AnnotateFunc = func(ctx context.Context, requests []ai.AnnotationRequest) ([]ai.Annotation, error) {
			annotations := make([]ai.Annotation, len(requests))
			for i := range requests {
				annotations[i] = ai.Annotation{ReviewID: "someone-else", Sentiment: "neutral"}
			}
			return annotations, nil
		}

		processor, err := NewProcessor(repo, annotator, nil, &bytes.Buffer{})
		require.NoError(t, err)

		result, err := processor.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, result.Enriched)
		assert.Equal(t, 1, result.FailedBatches)
	})

	t.Run("invalid sentiment writes nothing", func(t *testing.T) {
		annotator := mock.NewMockAnnotator()
		annotator.AnnotateFunc = func(ctx context.Context, requests []ai.AnnotationRequest) ([]ai.Annotation, error) {
			annotations := make([]ai.Annotation, len(requests))
			for i, req := range requests {
				annotations[i] = ai.Annotation{ReviewID: req.ReviewID, Sentiment: "ecstatic"}
			}
			return annotations, nil
		}

		processor, err := NewProcessor(repo, annotator, nil, &bytes.Buffer{})
		require.NoError(t, err)

		result, err := processor.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, result.FailedBatches)

		remaining, err := repo.GetUnenrichedReviews(context.Background(), 0)
		require.NoError(t, err)
		assert.Len(t, remaining, 2, "a failed batch must write zero rows")
	})
}

func TestProcessorNoCandidates(t *testing.T) {
	repo := setupRepo(t)

	annotator := mock.NewMockAnnotator()
	processor, err := NewProcessor(repo, annotator, nil, &bytes.Buffer{})
	require.NoError(t, err)

	result, err := processor.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Candidates)
	assert.Equal(t, 0, annotator.CallCount())
}

func TestProcessorInvalidBatchSize(t *testing.T) {
	repo := setupRepo(t)

	_, err := NewProcessor(repo, mock.NewMockAnnotator(), &Config{BatchSize: -1}, nil)
	assert.ErrorIs(t, err, ErrInvalidBatchSize)
}
