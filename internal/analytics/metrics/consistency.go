package metrics

import (
	"math"
	"time"

	"integral-analytics/internal/model"
)

// FocusConsistency converts daily focus-time volatility over a trailing
// window into a 0–100 consistency score: lower variability means higher
// consistency (100 - CV·100, floored at 0). A window with no focus time
// at all returns the neutral default rather than zero.
func FocusConsistency(sessions []model.FocusSession, days int, now time.Time) float64 {
	series := DailyFocusSeries(sessions, days, now)
	if mean(series) <= 0 {
		return NeutralConsistencyScore
	}
	cv := coefficientOfVariation(series)
	return math.Max(0, 100-cv*100)
}
