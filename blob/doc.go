// Package blob defines the object-store interface used by ingestion glue
// to pull raw review exports from remote storage and push processed
// artifacts back.
//
// Implementations live in subpackages: blob/s3 talks to AWS S3 (or any
// S3-compatible endpoint), blob/memory is an in-process double for tests.
package blob
