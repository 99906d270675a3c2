package insights

import "errors"

var (
	// ErrReviewRepositoryRequired is returned when a nil review repository is passed.
	ErrReviewRepositoryRequired = errors.New("review repository is required")

	// ErrInsightRepositoryRequired is returned when a nil insight repository is passed.
	ErrInsightRepositoryRequired = errors.New("insight repository is required")

	// ErrGeneratorRequired is returned when a nil text generator is passed.
	ErrGeneratorRequired = errors.New("text generator is required")

	// ErrInvalidWindow is returned when a window key is neither a
	// YYYY-MM calendar month nor the literal "all".
	ErrInvalidWindow = errors.New("invalid window")

	// ErrEmptyLocation is returned when a location id is empty.
	ErrEmptyLocation = errors.New("location id is required")
)
