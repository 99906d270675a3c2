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


package enrich

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/revsight/revsight/ai"
	"github.com/revsight/revsight/core"
	"github.com/revsight/revsight/progress"
	"github.com/revsight/revsight/storage"
)

// DefaultBatchSize is the number of reviews sent to the annotation service
// in one remote call.
const DefaultBatchSize = 20

// Config holds configuration for the enrichment run.
type Config struct {
	// BatchSize is the number of reviews annotated in each remote call.
	BatchSize int

	// ReportInterval is how often to report progress (number of reviews).
	ReportInterval int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      DefaultBatchSize,
		ReportInterval: DefaultBatchSize,
	}
}

// Result summarizes one enrichment run.
type Result struct {
	// Candidates is the number of unenriched reviews found at the start.
	Candidates int

	// Enriched is the number of reviews that gained an enrichment.
	Enriched int

	// FailedBatches is the number of batches skipped because the remote
	// call failed or returned an unusable response.
	FailedBatches int
}

// Processor groups unenriched reviews into bounded batches and annotates
// each batch with a single remote call. A failed batch writes zero rows and
// the run proceeds to the next batch; re-running picks up only reviews that
// are still unenriched.
type Processor struct {
	repo      storage.ReviewRepository
	annotator ai.Annotator
	config    *Config
	progress  io.Writer
	logger    *slog.Logger
}

// NewProcessor creates a new enrichment processor.
// progress: where to write progress output (typically os.Stderr); may be
// io.Discard.
func NewProcessor(repo storage.ReviewRepository, annotator ai.Annotator, config *Config, progressWriter io.Writer) (*Processor, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BatchSize <= 0 {
		return nil, ErrInvalidBatchSize
	}
	if config.ReportInterval <= 0 {
		config.ReportInterval = config.BatchSize
	}
	if progressWriter == nil {
		progressWriter = io.Discard
	}

	return &Processor{
		repo:      repo,
		annotator: annotator,
		config:    config,
		progress:  progressWriter,
		logger:    slog.Default().With("component", "enrich-processor"),
	}, nil
}

// Run enriches all currently unenriched reviews. Each batch is annotated
// with exactly one remote call; a batch whose call fails, or whose response
// does not cover exactly the requested review IDs, is skipped whole.
// Storage failures abort the run since continuing could mask data loss.
func (p *Processor) Run(ctx context.Context) (*Result, error) {
	candidates, err := p.repo.GetUnenrichedReviews(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query unenriched reviews: %w", err)
	}

	result := &Result{Candidates: len(candidates)}
	if len(candidates) == 0 {
		fmt.Fprintf(p.progress, "No unenriched reviews found\n")
		return result, nil
	}

	fmt.Fprintf(p.progress, "Enriching %d reviews (batch size: %d)\n",
		len(candidates), p.config.BatchSize)

	tracker := progress.NewTracker(p.progress, len(candidates), p.config.ReportInterval)
	tracker.Start()

	for start := 0; start < len(candidates); start += p.config.BatchSize {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		end := min(start+p.config.BatchSize, len(candidates))
		batch := candidates[start:end]

		enriched, err := p.processBatch(ctx, batch)
		if err != nil {
			return result, err
		}
		if enriched {
			result.Enriched += len(batch)
		} else {
			result.FailedBatches++
		}

		tracker.Increment(len(batch))
	}

	tracker.Finish()
	p.logger.Info("enrichment run complete",
		"candidates", result.Candidates,
		"enriched", result.Enriched,
		"failed_batches", result.FailedBatches)

	return result, nil
}

// processBatch annotates one batch and persists its enrichments. The bool
// result reports whether the batch was persisted; remote and response
// errors are logged and absorbed, storage errors propagate.
func (p *Processor) processBatch(ctx context.Context, batch []*core.Review) (bool, error) {
	requests := make([]ai.AnnotationRequest, len(batch))
	for i, review := range batch {
		requests[i] = ai.AnnotationRequest{
			ReviewID: review.ReviewID,
			Text:     review.Text,
			Rating:   review.Rating,
		}
	}

	annotations, err := p.annotator.Annotate(ctx, requests)
	if err != nil {
		p.logger.Warn("annotation call failed, skipping batch",
			"batch_size", len(batch), "err", err)
		return false, nil
	}

	enrichments, err := p.buildEnrichments(batch, annotations)
	if err != nil {
		p.logger.Warn("annotation response unusable, skipping batch",
			"batch_size", len(batch), "returned", len(annotations), "err", err)
		return false, nil
	}

	// All enrichments validated before any row is written; a failed batch
	// must write zero rows.
	for _, enrichment := range enrichments {
		if err := p.repo.PutEnrichment(ctx, enrichment); err != nil {
			return false, fmt.Errorf("failed to persist enrichment for %s: %w",
				enrichment.ReviewID, err)
		}
	}

	return true, nil
}

// buildEnrichments converts annotations into validated enrichments, checking
// that the response covers exactly the requested review IDs.
func (p *Processor) buildEnrichments(batch []*core.Review, annotations []ai.Annotation) ([]*core.Enrichment, error) {
	if len(annotations) != len(batch) {
		return nil, fmt.Errorf("%w: requested %d, got %d",
			ErrAnnotationMismatch, len(batch), len(annotations))
	}

	requested := make(map[string]bool, len(batch))
	for _, review := range batch {
		requested[review.ReviewID] = true
	}

	now := time.Now().UTC()
	enrichments := make([]*core.Enrichment, 0, len(annotations))
	for _, ann := range annotations {
		if !requested[ann.ReviewID] {
			return nil, fmt.Errorf("%w: unexpected review id %q",
				ErrAnnotationMismatch, ann.ReviewID)
		}
		delete(requested, ann.ReviewID)

		enrichment := &core.Enrichment{
			ReviewID:       ann.ReviewID,
			Sentiment:      core.Sentiment(ann.Sentiment),
			SentimentScore: ann.SentimentScore,
			Topics:         ann.Topics,
			Entities:       ann.Entities,
			ProcessedAt:    now,
		}
		if err := core.ValidateEnrichment(enrichment); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAnnotationMismatch, err)
		}
		enrichments = append(enrichments, enrichment)
	}

	if len(requested) > 0 {
		return nil, fmt.Errorf("%w: %d requested ids missing from response",
			ErrAnnotationMismatch, len(requested))
	}

	return enrichments, nil
}
