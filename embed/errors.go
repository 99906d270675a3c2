package embed

import "errors"

var (
	// ErrRepositoryRequired is returned when a nil repository is passed to a constructor.
	ErrRepositoryRequired = errors.New("review repository is required")

	// ErrEmbedderRequired is returned when a nil embedder is passed to a constructor.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrEmbeddingCountMismatch is returned when the embedding service
	// returns a different number of vectors than texts submitted.
	ErrEmbeddingCountMismatch = errors.New("embedding count mismatch")
)
