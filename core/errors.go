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

import "errors"

// Domain validation errors
var (
	// ErrInvalidReview indicates a Review failed validation.
	ErrInvalidReview = errors.New("invalid review")

	// ErrInvalidEnrichment indicates an Enrichment failed validation.
	ErrInvalidEnrichment = errors.New("invalid enrichment")

	// ErrEmptyReviewID indicates the ReviewID field is empty.
	ErrEmptyReviewID = errors.New("review id cannot be empty")

	// ErrEmptyLocationID indicates the LocationID field is empty.
	ErrEmptyLocationID = errors.New("location id cannot be empty")

	// ErrInvalidSource indicates an unknown review Source value.
	ErrInvalidSource = errors.New("invalid review source")

	// ErrRatingOutOfRange indicates a rating outside the 1-5 scale.
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

	// ErrInvalidSentiment indicates an unknown Sentiment value.
	ErrInvalidSentiment = errors.New("invalid sentiment")

	// ErrSentimentScoreOutOfRange indicates a sentiment score outside -1..1.
	ErrSentimentScoreOutOfRange = errors.New("sentiment score must be between -1 and 1")
)
