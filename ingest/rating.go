package ingest

import "strings"

// Keyword tiers for rating estimation, checked in priority order.
// Strongly-negative matches short-circuit before weaker classes are tested.
var (
	stronglyNegativeKeywords   = []string{"scam", "worst", "terrible", "never again", "avoid"}
	moderatelyNegativeKeywords = []string{"bad", "annoyed", "frustrated", "hidden fees", "overcharge"}
	stronglyPositiveKeywords   = []string{"excellent", "best", "highly recommend", "great deal"}
	moderatelyPositiveKeywords = []string{"good", "decent", "satisfied", "helpful"}
)

// Broader keyword lists used for the aggregate fallback computed across the
// whole post and its comments.
var (
	negativeSignalKeywords = []string{
		"bad", "worst", "terrible", "awful", "scam", "avoid", "never",
		"horrible", "rude", "hidden fees", "overcharge", "complaint",
		"warning", "beware", "don't", "do not", "annoyed", "frustrated",
	}
	positiveSignalKeywords = []string{
		"great", "excellent", "best", "recommend", "good", "helpful",
		"smooth", "easy", "bargain", "deal", "satisfied", "happy",
	}
)

// SentimentHints holds keyword counts across a whole thread, used as the
// fallback when a single comment matches no rating tier.
type SentimentHints struct {
	NegativeSignals int
	PositiveSignals int
}

// Overall classifies the aggregate signal as negative, positive or neutral.
func (h SentimentHints) Overall() string {
	switch {
	case h.NegativeSignals > h.PositiveSignals:
		return "negative"
	case h.PositiveSignals > h.NegativeSignals:
		return "positive"
	default:
		return "neutral"
	}
}

// ComputeSentimentHints counts sentiment keywords across a post title and
// all of its comments.
func ComputeSentimentHints(title string, comments []string) SentimentHints {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(title))
	for _, c := range comments {
		sb.WriteString(" ")
		sb.WriteString(strings.ToLower(c))
	}
	text := sb.String()

	var hints SentimentHints
	for _, kw := range negativeSignalKeywords {
		if strings.Contains(text, kw) {
			hints.NegativeSignals++
		}
	}
	for _, kw := range positiveSignalKeywords {
		if strings.Contains(text, kw) {
			hints.PositiveSignals++
		}
	}
	return hints
}

// EstimateRating scores a comment on the 1-5 scale from keyword tiers.
// Tiers are checked in priority order; a strongly-negative match wins even
// when positive keywords are also present. When no tier matches, the
// thread-wide aggregate decides: 2.5 negative, 3.5 positive, 3.0 neutral.
func EstimateRating(comment string, hints SentimentHints) float64 {
	lower := strings.ToLower(comment)

	if containsAny(lower, stronglyNegativeKeywords) {
		return 1.0
	}
	if containsAny(lower, moderatelyNegativeKeywords) {
		return 2.0
	}
	if containsAny(lower, stronglyPositiveKeywords) {
		return 5.0
	}
	if containsAny(lower, moderatelyPositiveKeywords) {
		return 4.0
	}

	switch hints.Overall() {
	case "negative":
		return 2.5
	case "positive":
		return 3.5
	default:
		return 3.0
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
