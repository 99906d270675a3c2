// Copyright 2025 Revsight Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package embed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/revsight/revsight/ai"
	"github.com/revsight/revsight/core"
	"github.com/revsight/revsight/storage"
)

// Index embeds review text and retrieves reviews by cosine similarity.
// Retrieval is an exhaustive scan over all stored vectors, which is
// adequate at the data volumes this system targets.
type Index struct {
	repo     storage.ReviewRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

// Option configures an Index.
type Option func(*Index) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Index) error {
		if logger == nil {
			logger = slog.Default()
		}
		ix.logger = logger
		return nil
	}
}

// NewIndex creates a new embedding index.
func NewIndex(repo storage.ReviewRepository, embedder ai.Embedder, opts ...Option) (*Index, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	ix := &Index{
		repo:     repo,
		embedder: embedder,
		logger:   slog.Default().With("component", "embed-index"),
	}

	for _, opt := range opts {
		if err := opt(ix); err != nil {
			return nil, err
		}
	}

	return ix, nil
}

// Embed computes and stores the embedding for one review's text.
// The vector is normalized to unit length before storage so cosine
// similarity reduces to a dot product against normalized queries.
// A remote-call failure propagates to the caller.
func (ix *Index) Embed(ctx context.Context, reviewID, text string) error {
	vector, err := ix.embedder.EmbedText(ctx, text)
	if err != nil {
		ix.logger.Error("error generating embedding", "review_id", reviewID, "err", err)
		return err
	}

	embedding := &core.Embedding{
		ReviewID:  reviewID,
		Vector:    NormalizeVector(vector),
		CreatedAt: time.Now().UTC(),
	}
	if err := ix.repo.PutEmbedding(ctx, embedding); err != nil {
		return fmt.Errorf("failed to store embedding for %s: %w", reviewID, err)
	}
	return nil
}

// Search embeds the query text and returns up to k reviews ordered by
// descending cosine similarity.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]*core.SearchResult, error) {
	vector, err := ix.embedder.EmbedText(ctx, query)
	if err != nil {
		ix.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	matches, err := ix.repo.FindSimilar(ctx, NormalizeVector(vector), k)
	if err != nil {
		ix.logger.Error("error querying for similar reviews", "err", err)
		return nil, err
	}

	results := make([]*core.SearchResult, 0, len(matches))
	for _, match := range matches {
		review, err := ix.repo.GetReview(ctx, match.ReviewID)
		if err != nil {
			// An embedding without its review indicates a partially
			// deleted record; skip it rather than failing the search.
			if errors.Is(err, storage.ErrNotFound) {
				ix.logger.Warn("embedding without review", "review_id", match.ReviewID)
				continue
			}
			return nil, err
		}
		results = append(results, &core.SearchResult{
			Review: review,
			Score:  match.Score,
		})
	}

	ix.logger.Debug("semantic search complete", "query", query, "hits", len(results))
	return results, nil
}
