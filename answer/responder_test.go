package answer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revsight/revsight/ai/mock"
	"github.com/revsight/revsight/core"
	"github.com/revsight/revsight/embed"
	"github.com/revsight/revsight/storage"
	"github.com/revsight/revsight/storage/badger"
)

type fixture struct {
	repo      storage.ReviewRepository
	index     *embed.Index
	generator *mock.MockGenerator
	responder *Responder
}

func setup(t *testing.T) *fixture {
	t.Helper()
	reviewRepo, insightRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		insightRepo.Close()
		reviewRepo.Close()
		backend.Close()
	})

	index, err := embed.NewIndex(reviewRepo, mock.NewMockEmbedder())
	require.NoError(t, err)

	generator := mock.NewMockGenerator()
	responder, err := NewResponder(reviewRepo, index, generator)
	require.NoError(t, err)

	return &fixture{
		repo:      reviewRepo,
		index:     index,
		generator: generator,
		responder: responder,
	}
}

func (f *fixture) seed(t *testing.T, id, location, text string, published time.Time, embedText bool) {
	t.Helper()
	ctx := context.Background()
	_, err := f.repo.PutReviews(ctx, &core.Review{
		ReviewID:    id,
		LocationID:  location,
		Source:      core.SourceStructured,
		Rating:      3,
		Text:        text,
		PublishedAt: published,
		Language:    "en",
	})
	require.NoError(t, err)
	if embedText {
		require.NoError(t, f.index.Embed(ctx, id, text))
	}
}

func TestAnswerSemantic(t *testing.T) {
	f := setup(t)
	now := time.Now().UTC()

	// More embedded reviews than the semantic limit, across locations
	for i := 0; i < 8; i++ {
		location := "JFK"
		if i%2 == 0 {
			location = "LAX"
		}
		f.seed(t, fmt.Sprintf("rv-%d", i), location, fmt.Sprintf("review number %d about shuttles", i), now, true)
	}

	response, err := f.responder.Answer(context.Background(), "review number 3 about shuttles", "JFK", true)
	require.NoError(t, err)

	assert.Equal(t, semanticLimit, response.ReviewCount, "semantic retrieval is capped at 5")
	assert.Len(t, response.Citations, maxCitations)
	assert.NotEmpty(t, response.Answer)
	assert.Equal(t, 1, f.generator.CallCount(), "exactly one model call per request")

	// The best match is the review whose text equals the query
	assert.Equal(t, "rv-3", response.Citations[0].ReviewID)

	// Semantic search is global: the location filter is not applied
	prompt := f.generator.LastPrompt()
	assert.Contains(t, prompt, "rv-3")
	assert.Equal(t, answerMaxTokens, f.generator.LastMaxTokens())
}

func TestAnswerRecency(t *testing.T) {
	f := setup(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 12; i++ {
		f.seed(t, fmt.Sprintf("jfk-%02d", i), "JFK", fmt.Sprintf("jfk review %d", i), base.Add(time.Duration(i)*time.Hour), false)
	}
	f.seed(t, "lax-01", "LAX", "lax review", base, false)

	response, err := f.responder.Answer(context.Background(), "what do people say", "JFK", false)
	require.NoError(t, err)

	assert.Equal(t, recencyLimit, response.ReviewCount, "recency retrieval is capped at 10")

	// Only the requested location contributes, newest first
	assert.Equal(t, "jfk-11", response.Citations[0].ReviewID)
	assert.NotContains(t, f.generator.LastPrompt(), "lax review")
}

func TestAnswerContextAndCitationCaps(t *testing.T) {
	f := setup(t)
	now := time.Now().UTC()

	long := strings.Repeat("x", 600)
	f.seed(t, "rv-long", "JFK", long, now, false)

	response, err := f.responder.Answer(context.Background(), "anything notable", "JFK", false)
	require.NoError(t, err)

	require.Len(t, response.Citations, 1)
	assert.Len(t, response.Citations[0].Text, citationCharLimit)

	prompt := f.generator.LastPrompt()
	assert.Contains(t, prompt, strings.Repeat("x", contextCharLimit))
	assert.NotContains(t, prompt, strings.Repeat("x", contextCharLimit+1),
		"context text must be capped at 300 chars")
}

func TestAnswerRemoteFailurePropagates(t *testing.T) {
	f := setup(t)
	f.seed(t, "rv-1", "JFK", "some review text goes here", time.Now().UTC(), false)

	remoteErr := errors.New("model unavailable")
	f.generator.GenerateFunc = func(ctx context.Context, prompt string, maxTokens int) (string, error) {
		return "", remoteErr
	}

	_, err := f.responder.Answer(context.Background(), "what happened", "JFK", false)
	assert.ErrorIs(t, err, remoteErr)
}

func TestAnswerEmptyQuery(t *testing.T) {
	f := setup(t)

	_, err := f.responder.Answer(context.Background(), "   ", "JFK", false)
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Equal(t, 0, f.generator.CallCount())
}

func TestAnswerNoContext(t *testing.T) {
	f := setup(t)

	response, err := f.responder.Answer(context.Background(), "anything", "JFK", false)
	require.NoError(t, err)
	assert.Equal(t, 0, response.ReviewCount)
	assert.Empty(t, response.Citations)
}
