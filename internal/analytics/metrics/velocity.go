package metrics

import (
	"time"

	"integral-analytics/internal/model"
)

// Velocity compares task completion counts between two trailing weekly
// buckets. Trend is a percentage change; a zero previous-week baseline
// reports ZeroBaselineTrend to avoid division by zero.
type Velocity struct {
	Current  int
	Previous int
	Trend    float64
}

// VelocityTrend buckets completed tasks into the last 7 days and the
// 8–14 days before that, relative to now.
func VelocityTrend(tasks []model.Task, now time.Time) Velocity {
	currentStart := now.AddDate(0, 0, -VelocityWindowDays)
	previousStart := now.AddDate(0, 0, -2*VelocityWindowDays)

	var v Velocity
	for _, t := range tasks {
		if t.CompletedAt == nil {
			continue
		}
		done := *t.CompletedAt
		switch {
		case done.After(currentStart) && !done.After(now):
			v.Current++
		case done.After(previousStart) && !done.After(currentStart):
			v.Previous++
		}
	}

	if v.Previous == 0 {
		v.Trend = ZeroBaselineTrend
		return v
	}
	v.Trend = float64(v.Current-v.Previous) / float64(v.Previous) * 100
	return v
}
