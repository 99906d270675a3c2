package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/revsight/revsight/core"
	"github.com/revsight/revsight/storage"
)

// InsightRepository implements storage.InsightRepository for BadgerDB.
type InsightRepository struct {
	backend *Backend
}

var _ storage.InsightRepository = (*InsightRepository)(nil)

// NewInsightRepository creates a new InsightRepository.
func NewInsightRepository(backend *Backend) *InsightRepository {
	return &InsightRepository{backend: backend}
}

// Close releases repository resources.
func (r *InsightRepository) Close() error {
	return nil
}

// PutInsight upserts a cached insight for its (LocationID, Window) key.
// Recomputation overwrites; entries never auto-expire.
func (r *InsightRepository) PutInsight(ctx context.Context, insight *core.CachedInsight) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeInsightKey(insight.LocationID, insight.Window)
		if err := tx.Set(key, storage.MarshalCachedInsight(insight)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetInsight retrieves the cached insight for a key.
func (r *InsightRepository) GetInsight(ctx context.Context, locationID, window string) (*core.CachedInsight, error) {
	var result *core.CachedInsight
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeInsightKey(locationID, window))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			result, err = storage.UnmarshalCachedInsight(val)
			return err
		})
	}, false)
	return result, err
}
