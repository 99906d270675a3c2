package insights

import (
	"fmt"
	"time"
)

// WindowAll selects the full review history for a location.
const WindowAll = "all"

// ParseWindow resolves a window key into a half-open [since, until) time
// range. Supported keys are a calendar month "YYYY-MM" and the literal
// "all", which returns zero times meaning unbounded.
func ParseWindow(window string) (time.Time, time.Time, error) {
	if window == WindowAll {
		return time.Time{}, time.Time{}, nil
	}

	start, err := time.Parse("2006-01", window)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidWindow, window)
	}

	return start, start.AddDate(0, 1, 0), nil
}
