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


package insights

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/revsight/revsight/ai"
	"github.com/revsight/revsight/core"
	"github.com/revsight/revsight/storage"
)

const (
	maxTopTopics       = 5
	maxKeyDrivers      = 5
	maxQuotesPerSide   = 2
	narrativeMaxTokens = 500
)

// Generator computes analytical summaries over a (location, window) slice of
// reviews and memoizes them in the insight repository.
//
// Cached never recomputes; Compute always recomputes and overwrites. The
// caller decides reuse-vs-recompute.
type Generator struct {
	reviewRepo  storage.ReviewRepository
	insightRepo storage.InsightRepository
	generator   ai.Generator
	logger      *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
		return nil
	}
}

// NewGenerator creates a new insights generator.
func NewGenerator(reviewRepo storage.ReviewRepository, insightRepo storage.InsightRepository, generator ai.Generator, opts ...Option) (*Generator, error) {
	if reviewRepo == nil {
		return nil, ErrReviewRepositoryRequired
	}
	if insightRepo == nil {
		return nil, ErrInsightRepositoryRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	g := &Generator{
		reviewRepo:  reviewRepo,
		insightRepo: insightRepo,
		generator:   generator,
		logger:      slog.Default().With("component", "insights-generator"),
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cached returns the memoized insight for the key, or nil when none exists.
// It never recomputes; "no insight yet" is an expected steady state, not an
// error.
func (g *Generator) Cached(ctx context.Context, locationID, window string) (*core.CachedInsight, error) {
	if locationID == "" {
		return nil, ErrEmptyLocation
	}
	if _, _, err := ParseWindow(window); err != nil {
		return nil, err
	}

	insight, err := g.insightRepo.GetInsight(ctx, locationID, window)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return insight, nil
}

// Compute aggregates the window's reviews, asks the language model for a
// narrative summary of the aggregates, and overwrites the cached insight.
// It always recomputes from current data, never returning a stale value.
func (g *Generator) Compute(ctx context.Context, locationID, window string) (*core.CachedInsight, error) {
	if locationID == "" {
		return nil, ErrEmptyLocation
	}
	since, until, err := ParseWindow(window)
	if err != nil {
		return nil, err
	}

	reviews, err := g.reviewRepo.QueryReviews(ctx, storage.ReviewQuery{
		LocationID: locationID,
		Since:      since,
		Until:      until,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}

	agg := g.aggregate(ctx, reviews)

	summary, err := g.generator.Generate(ctx, buildNarrativePrompt(locationID, window, agg), narrativeMaxTokens)
	if err != nil {
		g.logger.Error("narrative generation failed", "location", locationID, "window", window, "err", err)
		return nil, err
	}

	insight := &core.CachedInsight{
		LocationID:           locationID,
		Window:               window,
		TopTopics:            agg.topTopics,
		KeyDrivers:           agg.keyDrivers,
		RepresentativeQuotes: agg.quotes,
		Anomalies:            agg.anomalies,
		GeneratedSummary:     strings.TrimSpace(summary),
		ReviewCount:          len(reviews),
		CreatedAt:            time.Now().UTC(),
	}

	if err := g.insightRepo.PutInsight(ctx, insight); err != nil {
		return nil, fmt.Errorf("failed to cache insight: %w", err)
	}

	g.logger.Info("insight computed",
		"location", locationID,
		"window", window,
		"reviews", insight.ReviewCount,
		"topics", len(insight.TopTopics))

	return insight, nil
}

// aggregation holds the window's derived statistics.
type aggregation struct {
	topTopics  []core.TopicCount
	keyDrivers []core.Driver
	quotes     []core.Quote
	anomalies  []string

	enriched      int
	negativeCount int
	disagreements int
}

// aggregate walks the reviews and their enrichments. Topic frequency counts
// every occurrence, so a review with two topics contributes two counts.
// Drivers rank topics by the magnitude of their summed sentiment scores.
func (g *Generator) aggregate(ctx context.Context, reviews []*core.Review) *aggregation {
	agg := &aggregation{}

	topicCounts := make(map[string]int)
	topicImpact := make(map[string]float64)
	var positives, negatives []core.Quote

	for _, review := range reviews {
		enrichment, err := g.reviewRepo.GetEnrichment(ctx, review.ReviewID)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				g.logger.Warn("failed to load enrichment", "review_id", review.ReviewID, "err", err)
			}
			continue
		}
		agg.enriched++

		for _, topic := range enrichment.Topics {
			topicCounts[topic]++
			topicImpact[topic] += enrichment.SentimentScore
		}

		quote := core.Quote{
			ReviewID:       review.ReviewID,
			Text:           review.Text,
			SentimentScore: enrichment.SentimentScore,
		}
		if enrichment.SentimentScore > 0 {
			positives = append(positives, quote)
		} else if enrichment.SentimentScore < 0 {
			negatives = append(negatives, quote)
		}

		if enrichment.Sentiment == core.SentimentNegative {
			agg.negativeCount++
			if review.Rating >= 4 {
				agg.disagreements++
			}
		}
	}

	agg.topTopics = rankTopics(topicCounts)
	agg.keyDrivers = rankDrivers(topicImpact)
	agg.quotes = pickQuotes(positives, negatives)
	agg.anomalies = detectAnomalies(agg)

	return agg
}

func rankTopics(counts map[string]int) []core.TopicCount {
	ranked := make([]core.TopicCount, 0, len(counts))
	for topic, count := range counts {
		ranked = append(ranked, core.TopicCount{Topic: topic, Count: count})
	}
	slices.SortFunc(ranked, func(a, b core.TopicCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Topic, b.Topic)
	})
	if len(ranked) > maxTopTopics {
		ranked = ranked[:maxTopTopics]
	}
	return ranked
}

func rankDrivers(impact map[string]float64) []core.Driver {
	ranked := make([]core.Driver, 0, len(impact))
	for topic, score := range impact {
		ranked = append(ranked, core.Driver{Topic: topic, Impact: score})
	}
	slices.SortFunc(ranked, func(a, b core.Driver) int {
		ma, mb := math.Abs(a.Impact), math.Abs(b.Impact)
		if ma != mb {
			if ma > mb {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Topic, b.Topic)
	})
	if len(ranked) > maxKeyDrivers {
		ranked = ranked[:maxKeyDrivers]
	}
	return ranked
}

// pickQuotes selects the highest-magnitude quotes, positive and negative
// separately.
func pickQuotes(positives, negatives []core.Quote) []core.Quote {
	byMagnitude := func(a, b core.Quote) int {
		ma, mb := math.Abs(a.SentimentScore), math.Abs(b.SentimentScore)
		switch {
		case ma > mb:
			return -1
		case ma < mb:
			return 1
		default:
			return strings.Compare(a.ReviewID, b.ReviewID)
		}
	}
	slices.SortFunc(positives, byMagnitude)
	slices.SortFunc(negatives, byMagnitude)

	quotes := make([]core.Quote, 0, 2*maxQuotesPerSide)
	quotes = append(quotes, positives[:min(maxQuotesPerSide, len(positives))]...)
	quotes = append(quotes, negatives[:min(maxQuotesPerSide, len(negatives))]...)
	return quotes
}

func detectAnomalies(agg *aggregation) []string {
	anomalies := []string{}
	if agg.enriched >= 5 && agg.negativeCount*2 >= agg.enriched {
		anomalies = append(anomalies, fmt.Sprintf(
			"%d of %d enriched reviews are negative", agg.negativeCount, agg.enriched))
	}
	if agg.disagreements >= 3 {
		anomalies = append(anomalies, fmt.Sprintf(
			"%d high-rated reviews carry negative sentiment", agg.disagreements))
	}
	return anomalies
}

// buildNarrativePrompt renders the aggregates into the narrative prompt.
// The model sees only aggregated statistics, never raw review text, which
// bounds the prompt size regardless of window population.
func buildNarrativePrompt(locationID, window string, agg *aggregation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are summarizing customer review statistics for location %q over window %q.\n\n", locationID, window)

	fmt.Fprintf(&sb, "Enriched reviews: %d (negative: %d)\n", agg.enriched, agg.negativeCount)

	if len(agg.topTopics) > 0 {
		sb.WriteString("Top topics by mention count:\n")
		for _, tc := range agg.topTopics {
			fmt.Fprintf(&sb, "- %s: %d\n", tc.Topic, tc.Count)
		}
	}

	if len(agg.keyDrivers) > 0 {
		sb.WriteString("Sentiment drivers (summed sentiment score per topic):\n")
		for _, d := range agg.keyDrivers {
			fmt.Fprintf(&sb, "- %s: %+.2f\n", d.Topic, d.Impact)
		}
	}

	for _, anomaly := range agg.anomalies {
		fmt.Fprintf(&sb, "Anomaly: %s\n", anomaly)
	}

	sb.WriteString("\nWrite a short narrative summary (2-4 sentences) of what customers think, grounded only in the statistics above.")
	return sb.String()
}
