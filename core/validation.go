// Copyright 2025 Revsight Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateReview validates a Review according to domain rules.
//
// Validation rules:
//   - ReviewID must not be empty
//   - LocationID must not be empty (LocationAll counts as set)
//   - Source must be a known variant
//   - Rating must be within the 1-5 scale
//
// NOT validated:
//   - Text (empty text is tolerated for structured exports)
//   - PublishedAt (anchor fallbacks can place it anywhere in the past)
func ValidateReview(review *Review) error {
	if review == nil {
		return fmt.Errorf("%w: review is nil", ErrInvalidReview)
	}
	if review.ReviewID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidReview, ErrEmptyReviewID)
	}
	if review.LocationID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidReview, ErrEmptyLocationID)
	}
	if review.Source != SourceStructured && review.Source != SourceSocial {
		return fmt.Errorf("%w: %w: %q", ErrInvalidReview, ErrInvalidSource, review.Source)
	}
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("%w: %w: %v", ErrInvalidReview, ErrRatingOutOfRange, review.Rating)
	}
	return nil
}

// ValidateEnrichment validates an Enrichment according to domain rules.
//
// Validation rules:
//   - ReviewID must not be empty
//   - Sentiment must be one of positive, negative, neutral
//   - SentimentScore must be within -1..1
func ValidateEnrichment(enrichment *Enrichment) error {
	if enrichment == nil {
		return fmt.Errorf("%w: enrichment is nil", ErrInvalidEnrichment)
	}
	if enrichment.ReviewID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEnrichment, ErrEmptyReviewID)
	}
	switch enrichment.Sentiment {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
	default:
		return fmt.Errorf("%w: %w: %q", ErrInvalidEnrichment, ErrInvalidSentiment, enrichment.Sentiment)
	}
	if enrichment.SentimentScore < -1 || enrichment.SentimentScore > 1 {
		return fmt.Errorf("%w: %w: %v", ErrInvalidEnrichment, ErrSentimentScoreOutOfRange, enrichment.SentimentScore)
	}
	return nil
}
