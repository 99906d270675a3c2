package answer

import "errors"

var (
	// ErrRepositoryRequired is returned when a nil review repository is passed.
	ErrRepositoryRequired = errors.New("review repository is required")

	// ErrIndexRequired is returned when a nil embedding index is passed.
	ErrIndexRequired = errors.New("embedding index is required")

	// ErrGeneratorRequired is returned when a nil text generator is passed.
	ErrGeneratorRequired = errors.New("text generator is required")

	// ErrEmptyQuery is returned when a question is blank.
	ErrEmptyQuery = errors.New("query is required")
)
