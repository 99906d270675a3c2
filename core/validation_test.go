package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateReview(t *testing.T) {
	published := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		review  *Review
		wantErr error
	}{
		{
			name: "valid structured review",
			review: &Review{
				ReviewID:    "rv-001",
				LocationID:  "JFK",
				Source:      SourceStructured,
				Rating:      4,
				Text:        "Quick pickup, friendly staff",
				PublishedAt: published,
			},
			wantErr: nil,
		},
		{
			name: "valid social review with sentinel location",
			review: &Review{
				ReviewID:   "social_ab12cd34ef56_0",
				LocationID: LocationAll,
				Source:     SourceSocial,
				Rating:     2.5,
				Text:       "They charged me twice and support never answered",
			},
			wantErr: nil,
		},
		{
			name:    "nil review",
			review:  nil,
			wantErr: ErrInvalidReview,
		},
		{
			name: "missing review id",
			review: &Review{
				LocationID: "JFK",
				Source:     SourceStructured,
				Rating:     3,
			},
			wantErr: ErrEmptyReviewID,
		},
		{
			name: "missing location id",
			review: &Review{
				ReviewID: "rv-002",
				Source:   SourceStructured,
				Rating:   3,
			},
			wantErr: ErrEmptyLocationID,
		},
		{
			name: "unknown source",
			review: &Review{
				ReviewID:   "rv-003",
				LocationID: "JFK",
				Source:     Source("carrier-pigeon"),
				Rating:     3,
			},
			wantErr: ErrInvalidSource,
		},
		{
			name: "rating below scale",
			review: &Review{
				ReviewID:   "rv-004",
				LocationID: "JFK",
				Source:     SourceStructured,
				Rating:     0.5,
			},
			wantErr: ErrRatingOutOfRange,
		},
		{
			name: "rating above scale",
			review: &Review{
				ReviewID:   "rv-005",
				LocationID: "JFK",
				Source:     SourceStructured,
				Rating:     5.5,
			},
			wantErr: ErrRatingOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReview(tt.review)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateReview() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateReview() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEnrichment(t *testing.T) {
	tests := []struct {
		name       string
		enrichment *Enrichment
		wantErr    error
	}{
		{
			name: "valid enrichment",
			enrichment: &Enrichment{
				ReviewID:       "rv-001",
				Sentiment:      SentimentNegative,
				SentimentScore: -0.8,
				Topics:         []string{"hidden fees", "customer service"},
				Entities:       []string{"JFK Airport"},
			},
			wantErr: nil,
		},
		{
			name: "valid neutral with no topics",
			enrichment: &Enrichment{
				ReviewID:       "rv-002",
				Sentiment:      SentimentNeutral,
				SentimentScore: 0,
			},
			wantErr: nil,
		},
		{
			name:       "nil enrichment",
			enrichment: nil,
			wantErr:    ErrInvalidEnrichment,
		},
		{
			name: "missing review id",
			enrichment: &Enrichment{
				Sentiment:      SentimentPositive,
				SentimentScore: 0.5,
			},
			wantErr: ErrEmptyReviewID,
		},
		{
			name: "unknown sentiment",
			enrichment: &Enrichment{
				ReviewID:       "rv-003",
				Sentiment:      Sentiment("ecstatic"),
				SentimentScore: 0.9,
			},
			wantErr: ErrInvalidSentiment,
		},
		{
			name: "score below range",
			enrichment: &Enrichment{
				ReviewID:       "rv-004",
				Sentiment:      SentimentNegative,
				SentimentScore: -1.2,
			},
			wantErr: ErrSentimentScoreOutOfRange,
		},
		{
			name: "score above range",
			enrichment: &Enrichment{
				ReviewID:       "rv-005",
				Sentiment:      SentimentPositive,
				SentimentScore: 1.01,
			},
			wantErr: ErrSentimentScoreOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEnrichment(tt.enrichment)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateEnrichment() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEnrichment() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
