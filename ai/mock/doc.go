// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder, ai.Annotator,
// ai.Generator, and ai.AIProvider for use in unit tests. The mocks allow
// tests to run without external AI service dependencies and enable
// controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	vector, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	mockAnnotator := mock.NewMockAnnotator()
//	mockAnnotator.AnnotateFunc = func(ctx context.Context, reqs []ai.AnnotationRequest) ([]ai.Annotation, error) {
//	    return nil, errors.New("model unavailable")
//	}
//
//	// Check call counts
//	count := mockAnnotator.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockEmbedder: Returns deterministic vectors based on text hash
//   - MockAnnotator: Classifies sentiment from simple keyword matches with
//     the rating as fallback, and derives topics from distinctive words
//   - MockGenerator: Returns a canned summary string and records the prompt
//   - MockProvider: Aggregates the three mock services
package mock
