package badger

import (
	"encoding/binary"
	"time"
)

// Key prefixes for different data types
const (
	reviewKeyPrefix     = "rev:"
	reviewDateKeyPrefix = "revd:"
	enrichmentKeyPrefix = "enr:"
	embeddingKeyPrefix  = "emb:"
	insightKeyPrefix    = "ins:"
	embeddingDimKey     = "embdim"
)

// makeReviewKey generates a key for a review by id.
func makeReviewKey(reviewID string) []byte {
	return []byte(reviewKeyPrefix + reviewID)
}

// makeReviewDateKey generates a composite key for the publication-date index.
// Format: prefix + timestamp (8 bytes BigEndian, so lexicographic sort follows
// time order) + review id.
func makeReviewDateKey(publishedAt time.Time, reviewID string) []byte {
	prefixBytes := []byte(reviewDateKeyPrefix)
	buf := make([]byte, len(prefixBytes)+8+len(reviewID))
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(publishedAt.UnixMicro()))
	offset += 8
	copy(buf[offset:], reviewID)
	return buf
}

// makePartialReviewDateKey generates a partial key for date range scans.
func makePartialReviewDateKey(timestamp time.Time) []byte {
	prefixBytes := []byte(reviewDateKeyPrefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}

// makeEnrichmentKey generates a key for an enrichment by review id.
func makeEnrichmentKey(reviewID string) []byte {
	return []byte(enrichmentKeyPrefix + reviewID)
}

// makeEmbeddingKey generates a key for an embedding by review id.
func makeEmbeddingKey(reviewID string) []byte {
	return []byte(embeddingKeyPrefix + reviewID)
}

// makeInsightKey generates a composite key for a cached insight.
// Format: prefix + location + ":" + window.
func makeInsightKey(locationID, window string) []byte {
	return []byte(insightKeyPrefix + locationID + ":" + window)
}
