package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Annotator derives structured annotations from review text.
// Implementations must be thread-safe for concurrent use.
type Annotator interface {
	// Annotate analyzes a batch of reviews in a single request and returns
	// one annotation per input. An annotation is only usable if the result
	// covers exactly the requested review IDs; callers must verify this
	// before persisting anything from the batch.
	// Returns an error if the request or response handling fails.
	Annotate(ctx context.Context, requests []AnnotationRequest) ([]Annotation, error)
}

// Generator produces free-form text from a prompt.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Generate sends a single prompt to the model and returns the completion.
	// maxTokens bounds the length of the generated text; values <= 0 leave
	// the model default in place.
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder, Annotator and Generator instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Annotator returns the review annotation service.
	// The returned Annotator is safe for concurrent use.
	Annotator() Annotator

	// Generator returns the text generation service.
	// The returned Generator is safe for concurrent use.
	Generator() Generator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
