package blob

import "errors"

var (
	// ErrNotFound is returned when a requested key does not exist.
	ErrNotFound = errors.New("object not found")

	// ErrBucketRequired is returned when a store is created without a bucket name.
	ErrBucketRequired = errors.New("bucket name is required")
)
