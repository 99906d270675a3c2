package enrich

import "errors"

var (
	// ErrAnnotationMismatch is returned within a batch when the annotation
	// response does not cover exactly the requested review IDs.
	ErrAnnotationMismatch = errors.New("annotation response does not match request")

	// ErrInvalidBatchSize is returned when a processor is configured with
	// a non-positive batch size.
	ErrInvalidBatchSize = errors.New("batch size must be greater than 0")
)
