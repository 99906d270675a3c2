package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	numericRelativeRe = regexp.MustCompile(`(\d+)\s*(day|week|month|year)s?\s*ago`)
	articleRelativeRe = regexp.MustCompile(`a\s+(day|week|month|year)\s*ago`)
)

// ResolveRelativeDate converts a free-text relative date expression such as
// "3 days ago", "a week ago", "yesterday" or "today" into an absolute
// timestamp relative to the anchor. Months count as 30 days and years as
// 365 days; the conversion is approximate, not calendar-aware.
// Unparseable expressions resolve to the anchor itself.
func ResolveRelativeDate(expr string, anchor time.Time) time.Time {
	expr = strings.ToLower(strings.TrimSpace(expr))

	if strings.Contains(expr, "today") || strings.Contains(expr, "just now") {
		return anchor
	}
	if strings.Contains(expr, "yesterday") {
		return anchor.AddDate(0, 0, -1)
	}

	if m := numericRelativeRe.FindStringSubmatch(expr); m != nil {
		num, err := strconv.Atoi(m[1])
		if err == nil {
			return anchor.Add(-unitDuration(m[2]) * time.Duration(num))
		}
	}

	if m := articleRelativeRe.FindStringSubmatch(expr); m != nil {
		return anchor.Add(-unitDuration(m[1]))
	}

	return anchor
}

func unitDuration(unit string) time.Duration {
	const day = 24 * time.Hour
	switch unit {
	case "day":
		return day
	case "week":
		return 7 * day
	case "month":
		return 30 * day
	case "year":
		return 365 * day
	}
	return 0
}
