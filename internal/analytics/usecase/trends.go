package usecase

import (
	"context"

	"integral-analytics/internal/analytics"
	"integral-analytics/internal/analytics/metrics"
	"integral-analytics/internal/model"
	"integral-analytics/pkg/dateutil"
)

// GetComplexityTrends produces one point per calendar day in the window,
// oldest to newest: the mean complexity of tasks completed on that day,
// 0 for days with no completions. The series always has exactly
// TimeRangeDays entries.
func (uc *implUseCase) GetComplexityTrends(ctx context.Context, sc model.Scope, input analytics.ReportInput) (analytics.ComplexityTrendsOutput, error) {
	days := uc.resolveDays(input)
	now := uc.now()

	tasks, err := uc.windowTasks(ctx, sc, days, now)
	if err != nil {
		uc.l.Errorf(ctx, "GetComplexityTrends: list tasks: %v", err)
		return analytics.ComplexityTrendsOutput{}, err
	}

	// Bucket completed tasks by completion day.
	byDay := make(map[string][]model.Task)
	for _, t := range tasks {
		if t.CompletedAt == nil {
			continue
		}
		day := dateutil.FormatDay(*t.CompletedAt)
		byDay[day] = append(byDay[day], t)
	}

	start := dateutil.WindowStart(now, days)
	points := make([]analytics.TrendPoint, days)
	for i := 0; i < days; i++ {
		day := dateutil.FormatDay(start.AddDate(0, 0, i))
		points[i] = analytics.TrendPoint{
			Date:       day,
			Complexity: metrics.MeanComplexity(byDay[day]),
		}
	}

	return analytics.ComplexityTrendsOutput{Points: points, TimeRangeDays: days}, nil
}
