package badger

import (
	"context"
	"encoding/binary"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/revsight/revsight/core"
	"github.com/revsight/revsight/storage"
)

// ReviewRepository implements storage.ReviewRepository for BadgerDB.
type ReviewRepository struct {
	backend *Backend
}

var _ storage.ReviewRepository = (*ReviewRepository)(nil)

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(backend *Backend) (*ReviewRepository, error) {
	return &ReviewRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *ReviewRepository) Close() error {
	return nil
}

// PutReviews inserts reviews idempotently. Existing ids are left untouched.
func (r *ReviewRepository) PutReviews(ctx context.Context, reviews ...*core.Review) (int, error) {
	inserted := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, review := range reviews {
			key := makeReviewKey(review.ReviewID)

			_, err := tx.Get(key)
			if err == nil {
				// Duplicate id: no-op, never an overwrite
				continue
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			review.IngestedAt = time.Now().UTC()

			if err := tx.Set(key, storage.MarshalReview(review)); err != nil {
				return err
			}

			dateKey := makeReviewDateKey(review.PublishedAt, review.ReviewID)
			if err := tx.Set(dateKey, []byte(review.ReviewID)); err != nil {
				return err
			}
			inserted++
		}
		return tx.Commit()
	}, true)

	return inserted, err
}

// GetReview retrieves a single review by id.
func (r *ReviewRepository) GetReview(ctx context.Context, reviewID string) (*core.Review, error) {
	var result *core.Review
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readReview(tx, makeReviewKey(reviewID))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetReviewWithEnrichment retrieves a review left-joined with its enrichment.
func (r *ReviewRepository) GetReviewWithEnrichment(ctx context.Context, reviewID string) (*core.EnrichedReview, error) {
	var result *core.EnrichedReview
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		review, err := readReview(tx, makeReviewKey(reviewID))
		if err != nil {
			return err
		}
		if review == nil {
			return storage.ErrNotFound
		}

		enrichment, err := readEnrichment(tx, makeEnrichmentKey(reviewID))
		if err != nil {
			return err
		}

		result = &core.EnrichedReview{
			Review:     review,
			Enrichment: enrichment, // nil when not yet enriched
		}
		return nil
	}, false)
	return result, err
}

// QueryReviews returns reviews matching the query ordered by PublishedAt
// descending, walking the date index in reverse.
func (r *ReviewRepository) QueryReviews(ctx context.Context, q storage.ReviewQuery) ([]*core.Review, error) {
	if q.MinRating > 0 && q.MaxRating > 0 && q.MinRating > q.MaxRating {
		return nil, storage.ErrInvalidQuery
	}

	datePrefix := []byte(reviewDateKeyPrefix)
	var results []*core.Review

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the upper bound of the scan. Keys at exactly Until carry
		// the review id suffix and sort above the partial key, so Until is
		// exclusive. Without Until, seek past every possible timestamp.
		var seek []byte
		if !q.Until.IsZero() {
			seek = makePartialReviewDateKey(q.Until)
		} else {
			seek = append([]byte(reviewDateKeyPrefix), 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)
		}

		for iter.Seek(seek); iter.ValidForPrefix(datePrefix); iter.Next() {
			key := iter.Item().Key()
			ts := int64(binary.BigEndian.Uint64(key[len(datePrefix) : len(datePrefix)+8]))
			if !q.Since.IsZero() && ts < q.Since.UnixMicro() {
				break
			}

			reviewID := string(key[len(datePrefix)+8:])
			review, err := readReview(tx, makeReviewKey(reviewID))
			if err != nil {
				return err
			}
			if review == nil {
				continue
			}

			if q.LocationID != "" && review.LocationID != q.LocationID {
				continue
			}
			if q.MinRating > 0 && review.Rating < q.MinRating {
				continue
			}
			if q.MaxRating > 0 && review.Rating > q.MaxRating {
				continue
			}

			results = append(results, review)
			if q.Limit > 0 && len(results) >= q.Limit {
				break
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetUnenrichedReviews returns reviews that have no enrichment yet.
func (r *ReviewRepository) GetUnenrichedReviews(ctx context.Context, limit int) ([]*core.Review, error) {
	return r.reviewsMissing(makeEnrichmentKey, limit)
}

// GetUnembeddedReviews returns reviews that have no embedding yet.
func (r *ReviewRepository) GetUnembeddedReviews(ctx context.Context, limit int) ([]*core.Review, error) {
	return r.reviewsMissing(makeEmbeddingKey, limit)
}

// reviewsMissing scans all reviews and returns those lacking the companion
// record addressed by keyFn, in stable scan order.
func (r *ReviewRepository) reviewsMissing(keyFn func(string) []byte, limit int) ([]*core.Review, error) {
	reviewPrefix := []byte(reviewKeyPrefix)
	var results []*core.Review

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = reviewPrefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			reviewID := string(item.Key()[len(reviewPrefix):])

			_, err := tx.Get(keyFn(reviewID))
			if err == nil {
				continue
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			var review *core.Review
			err = item.Value(func(val []byte) error {
				var err error
				review, err = storage.UnmarshalReview(val)
				return err
			})
			if err != nil {
				return err
			}

			results = append(results, review)
			if limit > 0 && len(results) >= limit {
				break
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// PutEnrichment upserts an enrichment, replacing any existing record wholesale.
func (r *ReviewRepository) PutEnrichment(ctx context.Context, enrichment *core.Enrichment) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeEnrichmentKey(enrichment.ReviewID)
		if err := tx.Set(key, storage.MarshalEnrichment(enrichment)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetEnrichment retrieves the enrichment for a review.
func (r *ReviewRepository) GetEnrichment(ctx context.Context, reviewID string) (*core.Enrichment, error) {
	var result *core.Enrichment
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readEnrichment(tx, makeEnrichmentKey(reviewID))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// PutEmbedding upserts an embedding. The first stored vector fixes the
// store dimensionality; any other length is rejected.
func (r *ReviewRepository) PutEmbedding(ctx context.Context, embedding *core.Embedding) error {
	if len(embedding.Vector) == 0 {
		return storage.ErrDimensionMismatch
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		dim, err := readDimension(tx)
		if err != nil {
			return err
		}
		if dim == 0 {
			if err := writeDimension(tx, len(embedding.Vector)); err != nil {
				return err
			}
		} else if dim != len(embedding.Vector) {
			return storage.ErrDimensionMismatch
		}

		key := makeEmbeddingKey(embedding.ReviewID)
		if err := tx.Set(key, storage.MarshalEmbedding(embedding)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetEmbedding retrieves the embedding for a review.
func (r *ReviewRepository) GetEmbedding(ctx context.Context, reviewID string) (*core.Embedding, error) {
	var result *core.Embedding
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEmbeddingKey(reviewID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			result, err = storage.UnmarshalEmbedding(val)
			return err
		})
	}, false)
	return result, err
}

// FindSimilar delegates to the backend.
func (r *ReviewRepository) FindSimilar(ctx context.Context, vector []float32, limit int) ([]*core.SimilarityMatch, error) {
	return r.backend.FindSimilar(ctx, vector, limit)
}

// CountReviews returns the total number of stored reviews.
func (r *ReviewRepository) CountReviews(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(reviewKeyPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readReview reads and unmarshals a review, returning nil when absent.
func readReview(tx *badger.Txn, key []byte) (*core.Review, error) {
	item, err := tx.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var review *core.Review
	err = item.Value(func(val []byte) error {
		var err error
		review, err = storage.UnmarshalReview(val)
		return err
	})
	return review, err
}

// readEnrichment reads and unmarshals an enrichment, returning nil when absent.
func readEnrichment(tx *badger.Txn, key []byte) (*core.Enrichment, error) {
	item, err := tx.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var enrichment *core.Enrichment
	err = item.Value(func(val []byte) error {
		var err error
		enrichment, err = storage.UnmarshalEnrichment(val)
		return err
	})
	return enrichment, err
}

// readDimension reads the store embedding dimensionality, 0 when unset.
func readDimension(tx *badger.Txn) (int, error) {
	item, err := tx.Get([]byte(embeddingDimKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var dim int
	err = item.Value(func(val []byte) error {
		dim = int(binary.BigEndian.Uint64(val))
		return nil
	})
	return dim, err
}

// writeDimension records the store embedding dimensionality.
func writeDimension(tx *badger.Txn, dim int) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(dim))
	return tx.Set([]byte(embeddingDimKey), buf)
}
