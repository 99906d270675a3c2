package storage

import (
	"context"
	"time"

	"github.com/revsight/revsight/core"
)

// ReviewQuery filters QueryReviews results. Zero values disable a filter.
type ReviewQuery struct {
	// LocationID restricts results to one location when non-empty.
	LocationID string

	// MinRating / MaxRating bound the rating when > 0.
	MinRating float64
	MaxRating float64

	// Since / Until bound PublishedAt: Since <= PublishedAt < Until.
	Since time.Time
	Until time.Time

	// Limit caps the number of results; <= 0 means no cap.
	Limit int
}

// ReviewRepository provides durable keyed storage for reviews, enrichments,
// and embeddings. Implementations must be safe for concurrent use; every
// upsert is atomic at single-record granularity.
type ReviewRepository interface {
	// PutReviews inserts reviews idempotently. A review whose ReviewID
	// already exists is a no-op, never an overwrite. Sets IngestedAt on
	// inserted records. Returns the number of newly inserted reviews.
	PutReviews(ctx context.Context, reviews ...*core.Review) (int, error)

	// GetReview retrieves a single review by id.
	// Returns ErrNotFound if the review doesn't exist.
	GetReview(ctx context.Context, reviewID string) (*core.Review, error)

	// GetReviewWithEnrichment retrieves a review joined with its enrichment.
	// The Enrichment field is nil when the review has not been enriched.
	// Returns ErrNotFound if the review doesn't exist.
	GetReviewWithEnrichment(ctx context.Context, reviewID string) (*core.EnrichedReview, error)

	// QueryReviews returns reviews matching the query, ordered by
	// PublishedAt descending.
	QueryReviews(ctx context.Context, q ReviewQuery) ([]*core.Review, error)

	// GetUnenrichedReviews returns up to limit reviews that have no
	// enrichment yet; limit <= 0 returns all of them.
	GetUnenrichedReviews(ctx context.Context, limit int) ([]*core.Review, error)

	// PutEnrichment upserts an enrichment, replacing any existing record
	// for the same ReviewID wholesale.
	PutEnrichment(ctx context.Context, enrichment *core.Enrichment) error

	// GetEnrichment retrieves the enrichment for a review.
	// Returns ErrNotFound if the review has not been enriched.
	GetEnrichment(ctx context.Context, reviewID string) (*core.Enrichment, error)

	// PutEmbedding upserts an embedding, replacing any existing record for
	// the same ReviewID wholesale. The first stored vector fixes the store
	// dimensionality; a vector of any other length is rejected with
	// ErrDimensionMismatch.
	PutEmbedding(ctx context.Context, embedding *core.Embedding) error

	// GetEmbedding retrieves the embedding for a review.
	// Returns ErrNotFound if the review has not been embedded.
	GetEmbedding(ctx context.Context, reviewID string) (*core.Embedding, error)

	// GetUnembeddedReviews returns up to limit reviews that have no
	// embedding yet; limit <= 0 returns all of them.
	GetUnembeddedReviews(ctx context.Context, limit int) ([]*core.Review, error)

	// FindSimilar scans every stored embedding and returns up to limit
	// matches ordered by cosine similarity to the query vector, highest
	// first. A zero-norm vector on either side scores the minimum (-1)
	// rather than failing.
	FindSimilar(ctx context.Context, vector []float32, limit int) ([]*core.SimilarityMatch, error)

	// CountReviews returns the total number of stored reviews.
	CountReviews(ctx context.Context) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}

// InsightRepository stores cached insights keyed by (location, window).
// Entries are overwritten on recomputation and never auto-expire.
type InsightRepository interface {
	// PutInsight upserts a cached insight for its (LocationID, Window) key.
	PutInsight(ctx context.Context, insight *core.CachedInsight) error

	// GetInsight retrieves the cached insight for a key.
	// Returns ErrNotFound if no insight has been computed for the key.
	GetInsight(ctx context.Context, locationID, window string) (*core.CachedInsight, error)

	// Close closes the repository and releases resources.
	Close() error
}
