package ingest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/revsight/revsight/core"
)

// minCommentLength is the minimum length a social comment must have to be
// treated as a review. Shorter comments are noise.
const minCommentLength = 20

// socialPayload is the social-thread discussion shape. It supports two
// variants: a single channel with its posts inline, or a list of channels.
type socialPayload struct {
	Channels []socialChannel `json:"channels"`
	Channel  string          `json:"channel"`
	Posts    []socialPost    `json:"posts"`
}

type socialChannel struct {
	Channel string       `json:"channel"`
	Posts   []socialPost `json:"posts"`
}

type socialPost struct {
	Title    string   `json:"title"`
	Votes    int      `json:"votes"`
	Comments []string `json:"comments"`
}

func (n *Normalizer) normalizeSocial(raw []byte, anchor time.Time) ([]*core.Review, error) {
	var payload socialPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownPayload, err)
	}

	channels := payload.Channels
	if len(channels) == 0 {
		channel := payload.Channel
		if channel == "" {
			channel = "unknown"
		}
		channels = []socialChannel{{Channel: channel, Posts: payload.Posts}}
	}

	var reviews []*core.Review
	for _, ch := range channels {
		for _, post := range ch.Posts {
			reviews = append(reviews, n.normalizePost(post, ch.Channel, anchor)...)
		}
	}
	return reviews, nil
}

// normalizePost synthesizes one review per substantive comment. Identity is
// derived from the post title hash plus the comment position, so
// reprocessing the same thread yields the same review IDs.
func (n *Normalizer) normalizePost(post socialPost, channel string, anchor time.Time) []*core.Review {
	hints := ComputeSentimentHints(post.Title, post.Comments)
	postToken := core.ContentToken(post.Title)

	reviews := make([]*core.Review, 0, len(post.Comments))
	for i, comment := range post.Comments {
		if len(comment) < minCommentLength {
			continue
		}

		review := &core.Review{
			ReviewID:       fmt.Sprintf("social_%s_%d", postToken, i),
			LocationID:     core.LocationAll,
			Source:         core.SourceSocial,
			Rating:         EstimateRating(comment, hints),
			Text:           comment,
			AuthorName:     fmt.Sprintf("%s user", channel),
			AuthorCategory: categorySocial,
			PublishedAt:    anchor,
			Language:       "en",
		}

		if err := core.ValidateReview(review); err != nil {
			n.logger.Warn("skipping malformed comment",
				"review_id", review.ReviewID,
				"err", fmt.Errorf("%w: %w", ErrMalformedRecord, err))
			continue
		}

		reviews = append(reviews, review)
	}
	return reviews
}
