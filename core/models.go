package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// LocationAll is the sentinel location for reviews that are not tied to a
// specific location, such as reviews mined from social threads.
const LocationAll = "ALL"

// ContentToken generates a short deterministic token from text content using
// BLAKE2b hashing. Identical content always produces the identical token, so
// identifiers derived from it survive re-ingestion of the same input.
func ContentToken(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))[:12]
}

// Source identifies where a review was obtained from.
type Source string

const (
	// SourceStructured is a first-party structured review export.
	SourceStructured Source = "structured-scrape"
	// SourceSocial is a review synthesized from a social discussion thread.
	SourceSocial Source = "social-thread"
)

// Sentiment is the overall polarity assigned to a review by enrichment.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Review is a canonical normalized customer feedback record.
// Reviews are created by the ingest normalizer and are immutable afterwards;
// insertion by ReviewID is idempotent (duplicates are no-ops).
type Review struct {
	ReviewID            string
	LocationID          string
	Source              Source
	Rating              float64 // 1-5; estimated for social-thread sources
	Text                string
	AuthorName          string
	AuthorCategory      string
	PublishedAt         time.Time // Resolved absolute timestamp
	PublishedAtRelative string    // Original relative-date string, kept for audit
	Language            string
	IngestedAt          time.Time // When the record was inserted into the store
}

// Enrichment is the model-derived annotation attached to a review.
// At most one per ReviewID; upserts replace the whole record.
type Enrichment struct {
	ReviewID       string
	Sentiment      Sentiment
	SentimentScore float64 // -1..1
	Topics         []string
	Entities       []string
	ProcessedAt    time.Time
}

// Embedding is the fixed-dimension vector representation of a review's text.
// At most one per ReviewID; the vector dimensionality is constant across the
// whole store.
type Embedding struct {
	ReviewID  string
	Vector    []float32
	CreatedAt time.Time
}

// EnrichedReview is a left-join projection of a review and its enrichment.
// Enrichment is nil when the review has not been enriched yet.
type EnrichedReview struct {
	Review     *Review
	Enrichment *Enrichment
}

// TopicCount is a topic with its occurrence count inside a window.
type TopicCount struct {
	Topic string
	Count int
}

// Driver is a topic ranked by its aggregate sentiment impact.
// Impact is the sum of sentiment scores across reviews mentioning the topic,
// so strongly negative drivers carry a large negative impact.
type Driver struct {
	Topic  string
	Impact float64
}

// Quote is a representative review excerpt selected for an insight.
type Quote struct {
	ReviewID       string
	Text           string
	SentimentScore float64
}

// CachedInsight is a memoized analytical summary for a (location, window) key.
// Entries never auto-expire; staleness is the caller's responsibility.
type CachedInsight struct {
	LocationID           string
	Window               string
	TopTopics            []TopicCount
	KeyDrivers           []Driver
	RepresentativeQuotes []Quote
	Anomalies            []string
	GeneratedSummary     string
	ReviewCount          int
	CreatedAt            time.Time
}

// SimilarityMatch is a review match from vector similarity search.
type SimilarityMatch struct {
	ReviewID string
	Score    float32
}

// SearchResult is a search result with the full review and relevance score.
type SearchResult struct {
	Review *Review
	Score  float32
}
