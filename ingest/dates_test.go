package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveRelativeDate(t *testing.T) {
	anchor := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		expr string
		want time.Time
	}{
		{"numeric days", "3 days ago", time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)},
		{"single day", "1 day ago", time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)},
		{"article week", "a week ago", time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)},
		{"numeric weeks", "2 weeks ago", time.Date(2025, 12, 27, 0, 0, 0, 0, time.UTC)},
		{"month approximation", "1 month ago", anchor.Add(-30 * 24 * time.Hour)},
		{"year approximation", "a year ago", anchor.Add(-365 * 24 * time.Hour)},
		{"today", "today", anchor},
		{"just now", "just now", anchor},
		{"yesterday", "yesterday", time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)},
		{"mixed case with whitespace", "  A Week Ago  ", time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)},
		{"unparseable falls back to anchor", "sometime", anchor},
		{"empty falls back to anchor", "", anchor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRelativeDate(tt.expr, anchor)
			assert.True(t, got.Equal(tt.want), "expected %v, got %v", tt.want, got)
		})
	}
}
