package metrics

import (
	"math"
	"time"

	"integral-analytics/internal/model"
)

// BurnoutRisk scores a user's burnout exposure on a 0–100 scale from
// three independent signals: deadline pressure (overdue tasks), priority
// backlog (high-priority incomplete tasks), and work-pattern volatility
// (coefficient of variation of daily focus time over the last 7 days).
// The signals add, each capped, and the sum is clamped to the scale.
func BurnoutRisk(tasks []model.Task, sessions []model.FocusSession, now time.Time) float64 {
	var recentOverdue, highPriorityIncomplete int
	for _, t := range tasks {
		if t.IsOverdue(now) {
			recentOverdue++
		}
		if t.Priority == model.TaskPriorityHigh && !t.IsCompleted() {
			highPriorityIncomplete++
		}
	}

	inconsistency := coefficientOfVariation(DailyFocusSeries(sessions, VelocityWindowDays, now))

	overdueWeight := math.Min(float64(recentOverdue)*overdueWeightPerTask, overdueWeightCap)
	priorityWeight := math.Min(float64(highPriorityIncomplete)*priorityWeightPerTask, priorityWeightCap)
	inconsistencyWeight := math.Min(inconsistency*100, inconsistencyCap)

	return math.Min(overdueWeight+priorityWeight+inconsistencyWeight, burnoutScoreCap)
}
