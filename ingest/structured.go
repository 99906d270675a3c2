package ingest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/revsight/revsight/core"
)

// structuredPayload is the structured-scrape export shape.
type structuredPayload struct {
	Data struct {
		Reviews []structuredReview `json:"reviews"`
	} `json:"data"`
}

type structuredReview struct {
	ReviewID     string  `json:"review_id"`
	Rating       float64 `json:"rating"`
	Text         string  `json:"text"`
	Reviewer     string  `json:"reviewer"`
	RelativeDate string  `json:"relative_date"`
}

// Author categories assigned during normalization.
const (
	categoryFrequentReviewer = "frequent_reviewer"
	categoryStandard         = "standard"
	categorySocial           = "social_user"
)

func (n *Normalizer) normalizeStructured(raw []byte, opts Options, anchor time.Time) ([]*core.Review, error) {
	var payload structuredPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownPayload, err)
	}

	location, scrapeDate := parseFilenameToken(opts.Filename, anchor)
	if opts.LocationHint != "" {
		location = opts.LocationHint
	}

	reviews := make([]*core.Review, 0, len(payload.Data.Reviews))
	for _, rec := range payload.Data.Reviews {
		review := &core.Review{
			ReviewID:            rec.ReviewID,
			LocationID:          location,
			Source:              core.SourceStructured,
			Rating:              rec.Rating,
			Text:                rec.Text,
			AuthorName:          rec.Reviewer,
			AuthorCategory:      reviewerCategory(rec.Reviewer),
			PublishedAt:         ResolveRelativeDate(rec.RelativeDate, scrapeDate),
			PublishedAtRelative: rec.RelativeDate,
			Language:            "en",
		}

		if err := core.ValidateReview(review); err != nil {
			n.logger.Warn("skipping malformed record",
				"review_id", rec.ReviewID,
				"err", fmt.Errorf("%w: %w", ErrMalformedRecord, err))
			continue
		}

		reviews = append(reviews, review)
	}

	return reviews, nil
}

// reviewerCategory flags authors the source marks as high-volume reviewers.
func reviewerCategory(reviewer string) string {
	if strings.Contains(reviewer, "Local Guide") {
		return categoryFrequentReviewer
	}
	return categoryStandard
}
