package rank

import (
	"time"

	"github.com/poiesic/lancer/core"
)

// undatedScore is assigned when a result carries no publication date.
// Neutral rather than zero: many good sources simply omit dates.
const undatedScore = 0.5

// freshnessScore rates how well a result's age fits the intent window.
// Results inside the window score 1.0, then decay linearly to 0 at three
// times the window width. With an unbounded window every dated result is
// equally fresh.
func freshnessScore(publishedAt *time.Time, window core.Window, now time.Time) float64 {
	if publishedAt == nil {
		return undatedScore
	}
	if window.Unbounded {
		return 1.0
	}

	age := now.Sub(*publishedAt)
	if age < 0 {
		// Dates in the future are clock skew, treat as current.
		age = 0
	}
	if age <= window.Width {
		return 1.0
	}

	limit := 3 * window.Width
	if age >= limit {
		return 0.0
	}
	return float64(limit-age) / float64(2*window.Width)
}
