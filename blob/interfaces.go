package blob

import "context"

// Store abstracts an object store used by ingestion glue to move raw
// review exports around. The core pipeline never calls it directly.
type Store interface {
	// List returns the keys under the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Download fetches the object stored at key.
	Download(ctx context.Context, key string) ([]byte, error)

	// Upload stores data at key, overwriting any existing object.
	Upload(ctx context.Context, key string, data []byte) error
}
