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


package answer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/revsight/revsight/ai"
	"github.com/revsight/revsight/core"
	"github.com/revsight/revsight/embed"
	"github.com/revsight/revsight/storage"
)

const (
	// semanticLimit bounds semantic retrieval.
	semanticLimit = 5

	// recencyLimit bounds recency retrieval.
	recencyLimit = 10

	// contextCharLimit caps each review's text inside the prompt.
	contextCharLimit = 300

	// citationCharLimit caps each citation's text.
	citationCharLimit = 150

	// maxCitations is how many context reviews are cited back.
	maxCitations = 3

	// answerMaxTokens bounds the model's answer length.
	answerMaxTokens = 500
)

// Citation points the answer back at a source review.
type Citation struct {
	ReviewID string `json:"review_id"`
	Text     string `json:"text"`
}

// Response is a grounded answer to a user question.
type Response struct {
	Answer      string     `json:"answer"`
	Citations   []Citation `json:"citations"`
	ReviewCount int        `json:"review_count"`
}

// Responder answers free-text questions grounded in stored reviews. Context
// comes either from the embedding index (semantic) or from the most recent
// reviews for a location (recency).
type Responder struct {
	repo      storage.ReviewRepository
	index     *embed.Index
	generator ai.Generator
	logger    *slog.Logger
}

// Option configures a Responder.
type Option func(*Responder) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Responder) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewResponder creates a new responder.
func NewResponder(repo storage.ReviewRepository, index *embed.Index, generator ai.Generator, opts ...Option) (*Responder, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if index == nil {
		return nil, ErrIndexRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	r := &Responder{
		repo:      repo,
		index:     index,
		generator: generator,
		logger:    slog.Default().With("component", "responder"),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Answer responds to a question with exactly one language-model call.
//
// With useSemantic, context comes from the embedding index's global top 5;
// the locationID filter is intentionally not applied to semantic retrieval.
// Otherwise context comes from the 10 most recent reviews for locationID.
// A remote-call failure surfaces as an error and is not retried.
func (r *Responder) Answer(ctx context.Context, query, locationID string, useSemantic bool) (*Response, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	reviews, err := r.gatherContext(ctx, query, locationID, useSemantic)
	if err != nil {
		return nil, err
	}

	prompt := buildPrompt(query, reviews)
	answerText, err := r.generator.Generate(ctx, prompt, answerMaxTokens)
	if err != nil {
		r.logger.Error("answer generation failed", "query", query, "err", err)
		return nil, err
	}

	citations := make([]Citation, 0, maxCitations)
	for _, review := range reviews[:min(maxCitations, len(reviews))] {
		citations = append(citations, Citation{
			ReviewID: review.ReviewID,
			Text:     truncate(review.Text, citationCharLimit),
		})
	}

	r.logger.Debug("answered question",
		"semantic", useSemantic,
		"context_reviews", len(reviews))

	return &Response{
		Answer:      strings.TrimSpace(answerText),
		Citations:   citations,
		ReviewCount: len(reviews),
	}, nil
}

func (r *Responder) gatherContext(ctx context.Context, query, locationID string, useSemantic bool) ([]*core.Review, error) {
	if useSemantic {
		results, err := r.index.Search(ctx, query, semanticLimit)
		if err != nil {
			return nil, err
		}
		reviews := make([]*core.Review, len(results))
		for i, result := range results {
			reviews[i] = result.Review
		}
		return reviews, nil
	}

	reviews, err := r.repo.QueryReviews(ctx, storage.ReviewQuery{
		LocationID: locationID,
		Limit:      recencyLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query recent reviews: %w", err)
	}
	return reviews, nil
}

func buildPrompt(query string, reviews []*core.Review) string {
	var sb strings.Builder
	for i, review := range reviews {
		fmt.Fprintf(&sb, "Review %d (ID: %s, Rating: %.1f):\n%s\n\n",
			i+1, review.ReviewID, review.Rating, truncate(review.Text, contextCharLimit))
	}

	return fmt.Sprintf(`You are analyzing customer reviews. Answer based on the provided reviews.

Reviews:
%s
User Question: %s

Provide a concise answer with specific examples from the reviews.`, sb.String(), query)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
