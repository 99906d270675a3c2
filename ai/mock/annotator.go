package mock

import (
	"context"
	"strings"

	"github.com/revsight/revsight/ai"
)

// MockAnnotator is a test double for ai.Annotator.
// It allows custom behavior injection via function fields.
type MockAnnotator struct {
	// AnnotateFunc is called by Annotate if set.
	// If nil, uses default keyword-based behavior.
	AnnotateFunc func(ctx context.Context, requests []ai.AnnotationRequest) ([]ai.Annotation, error)

	callCount int
}

// NewMockAnnotator creates a mock annotator with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via GetMockAnnotator().
func NewMockAnnotator() *MockAnnotator {
	return &MockAnnotator{}
}

// Annotate produces deterministic annotations from review text.
// Default behavior: sentiment follows simple keyword matches with the rating
// as a fallback, and topics are the first few distinctive words of the text.
func (m *MockAnnotator) Annotate(ctx context.Context, requests []ai.AnnotationRequest) ([]ai.Annotation, error) {
	m.callCount++

	if m.AnnotateFunc != nil {
		return m.AnnotateFunc(ctx, requests)
	}

	annotations := make([]ai.Annotation, 0, len(requests))
	for _, req := range requests {
		sentiment, score := classifyText(req.Text, req.Rating)
		annotations = append(annotations, ai.Annotation{
			ReviewID:       req.ReviewID,
			Sentiment:      sentiment,
			SentimentScore: score,
			Topics:         pickTopics(req.Text),
			Entities:       []string{},
		})
	}
	return annotations, nil
}

// CallCount returns the number of times Annotate was called.
func (m *MockAnnotator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockAnnotator) Reset() {
	m.callCount = 0
	m.AnnotateFunc = nil
}

func classifyText(text string, rating float64) (string, float64) {
	lower := strings.ToLower(text)
	for _, word := range []string{"terrible", "worst", "awful", "scam"} {
		if strings.Contains(lower, word) {
			return "negative", -0.8
		}
	}
	for _, word := range []string{"great", "excellent", "amazing", "recommend"} {
		if strings.Contains(lower, word) {
			return "positive", 0.8
		}
	}
	switch {
	case rating > 0 && rating <= 2:
		return "negative", -0.5
	case rating >= 4:
		return "positive", 0.5
	default:
		return "neutral", 0.0
	}
}

func pickTopics(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	topics := make([]string, 0, 3)
	for _, word := range words {
		word = strings.Trim(word, ".,!?;:\"'()[]")
		if len(word) > 5 {
			topics = append(topics, word)
		}
		if len(topics) >= 3 {
			break
		}
	}
	return topics
}
