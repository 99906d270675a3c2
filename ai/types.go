package ai

// AnnotationRequest describes one review submitted for annotation.
type AnnotationRequest struct {
	// ReviewID identifies the review; it is echoed back in the annotation.
	ReviewID string

	// Text is the review body to analyze.
	Text string

	// Rating is the star rating (1-5) supplied as additional signal.
	Rating float64
}

// Annotation is the structured analysis of a single review.
type Annotation struct {
	// ReviewID is the identifier of the annotated review.
	ReviewID string

	// Sentiment is one of "positive", "negative", "neutral".
	Sentiment string

	// SentimentScore ranges from -1.0 (most negative) to 1.0 (most positive).
	SentimentScore float64

	// Topics are short lowercase phrases naming what the review is about.
	// Example: "wait time", "staff friendliness", "pricing"
	Topics []string

	// Entities are concrete things mentioned in the review.
	// Example: "terminal 4", "shuttle bus", "front desk"
	Entities []string
}
