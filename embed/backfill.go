package embed

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/revsight/revsight/ai"
	"github.com/revsight/revsight/core"
	"github.com/revsight/revsight/progress"
	"github.com/revsight/revsight/storage"
)

// Config holds configuration for the backfill operation.
type Config struct {
	// BatchSize is the number of reviews to embed in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of reviews)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed embedding calls
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Backfiller embeds every review that does not yet have a stored vector.
// Embedding calls are batched and retried with exponential backoff.
type Backfiller struct {
	repo     storage.ReviewRepository
	embedder ai.Embedder
	config   *Config
	progress io.Writer
}

// NewBackfiller creates a new backfiller.
// progress: where to write progress output (typically os.Stderr)
func NewBackfiller(repo storage.ReviewRepository, embedder ai.Embedder, config *Config, progressWriter io.Writer) (*Backfiller, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if progressWriter == nil {
		progressWriter = io.Discard
	}

	return &Backfiller{
		repo:     repo,
		embedder: embedder,
		config:   config,
		progress: progressWriter,
	}, nil
}

// Run embeds all reviews currently missing an embedding.
// Progress is reported to the configured writer.
func (b *Backfiller) Run(ctx context.Context) error {
	candidates, err := b.repo.GetUnembeddedReviews(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to query unembedded reviews: %w", err)
	}

	if len(candidates) == 0 {
		fmt.Fprintf(b.progress, "No reviews missing embeddings (0 records)\n")
		return nil
	}

	fmt.Fprintf(b.progress, "Embedding %d reviews (batch size: %d)\n",
		len(candidates), b.config.BatchSize)

	tracker := progress.NewTracker(b.progress, len(candidates), b.config.ReportInterval)
	tracker.Start()

	processed := 0
	for start := 0; start < len(candidates); start += b.config.BatchSize {
		end := min(start+b.config.BatchSize, len(candidates))
		batch := candidates[start:end]

		if err := b.processBatch(ctx, batch); err != nil {
			return err
		}

		processed += len(batch)
		tracker.Update(processed)
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(b.progress, "Backfill complete. Embedded %d reviews in %v (%.1f reviews/sec)\n",
		len(candidates), elapsed.Round(time.Second), float64(len(candidates))/elapsed.Seconds())

	return nil
}

// processBatch embeds one batch of reviews and stores the vectors.
// Vectors are normalized after embedding for cosine similarity.
func (b *Backfiller) processBatch(ctx context.Context, batch []*core.Review) error {
	texts := make([]string, len(batch))
	for i, review := range batch {
		texts[i] = review.Text
	}

	var vectors [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		vectors, err = b.embedder.EmbedTexts(ctx, texts)
		return err
	}, b.config.MaxRetries, b.config.RetryDelay)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", b.config.MaxRetries, err)
	}

	if len(vectors) != len(batch) {
		return fmt.Errorf("%w: expected %d, got %d", ErrEmbeddingCountMismatch, len(batch), len(vectors))
	}

	now := time.Now().UTC()
	for i, review := range batch {
		embedding := &core.Embedding{
			ReviewID:  review.ReviewID,
			Vector:    NormalizeVector(vectors[i]),
			CreatedAt: now,
		}
		if err := b.repo.PutEmbedding(ctx, embedding); err != nil {
			return fmt.Errorf("failed to store embedding for %s: %w", review.ReviewID, err)
		}
	}

	return nil
}
