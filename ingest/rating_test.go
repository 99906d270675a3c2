package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateRatingTiers(t *testing.T) {
	neutral := SentimentHints{}

	tests := []struct {
		name    string
		comment string
		want    float64
	}{
		{"strongly negative", "This company is a total scam", 1.0},
		{"negative tier beats positive keywords", "Worst experience ever, avoid them, even though the price was a great deal", 1.0},
		{"moderately negative", "Really bad communication and hidden fees everywhere", 2.0},
		{"strongly positive", "Excellent service, highly recommend to everyone", 5.0},
		{"moderately positive", "The staff was helpful and the car was decent", 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateRating(tt.comment, neutral))
		})
	}
}

func TestEstimateRatingAggregateFallback(t *testing.T) {
	// None of these comments contain tier keywords, so the thread-wide
	// aggregate decides.
	comment := "I rented a car for my trip last summer"

	t.Run("negative aggregate", func(t *testing.T) {
		hints := SentimentHints{NegativeSignals: 3, PositiveSignals: 1}
		assert.Equal(t, 2.5, EstimateRating(comment, hints))
	})

	t.Run("positive aggregate", func(t *testing.T) {
		hints := SentimentHints{NegativeSignals: 1, PositiveSignals: 3}
		assert.Equal(t, 3.5, EstimateRating(comment, hints))
	})

	t.Run("neutral aggregate", func(t *testing.T) {
		hints := SentimentHints{NegativeSignals: 2, PositiveSignals: 2}
		assert.Equal(t, 3.0, EstimateRating(comment, hints))
	})
}

func TestEstimateRatingRange(t *testing.T) {
	comments := []string{
		"scam artists, never again",
		"pretty bad and frustrated overall",
		"excellent option, best in class",
		"good enough, satisfied",
		"nothing remarkable about this rental place",
	}
	for _, c := range comments {
		r := EstimateRating(c, SentimentHints{})
		assert.Contains(t, []float64{1.0, 2.0, 2.5, 3.0, 3.5, 4.0, 5.0}, r,
			"rating for %q must come from the fixed tier set", c)
	}
}

func TestComputeSentimentHints(t *testing.T) {
	hints := ComputeSentimentHints(
		"Warning about rental scams",
		[]string{"They overcharge for everything", "The deal looked great at first"},
	)

	assert.Greater(t, hints.NegativeSignals, 0)
	assert.Greater(t, hints.PositiveSignals, 0)
	assert.Equal(t, "negative", hints.Overall())
}
