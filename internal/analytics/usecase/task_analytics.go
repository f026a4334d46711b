package usecase

import (
	"context"
	"math"

	"integral-analytics/internal/analytics"
	"integral-analytics/internal/model"
)

// GetTaskAnalytics builds task counts, the mean completion latency, and
// the priority distribution over the trailing window.
func (uc *implUseCase) GetTaskAnalytics(ctx context.Context, sc model.Scope, input analytics.ReportInput) (analytics.TaskAnalyticsOutput, error) {
	days := uc.resolveDays(input)
	now := uc.now()

	tasks, err := uc.windowTasks(ctx, sc, days, now)
	if err != nil {
		uc.l.Errorf(ctx, "GetTaskAnalytics: list tasks: %v", err)
		return analytics.TaskAnalyticsOutput{}, err
	}

	out := analytics.TaskAnalytics{
		TotalTasks: len(tasks),
		PriorityDistribution: map[model.TaskPriority]int{
			model.TaskPriorityLow:    0,
			model.TaskPriorityMedium: 0,
			model.TaskPriorityHigh:   0,
		},
	}

	var latencySum float64
	var latencyCount int
	for _, t := range tasks {
		if t.IsCompleted() {
			out.CompletedTasks++
		}
		if t.IsOverdue(now) {
			out.OverdueTasks++
		}
		if _, ok := out.PriorityDistribution[t.Priority]; ok {
			out.PriorityDistribution[t.Priority]++
		}
		if t.CompletedAt != nil && !t.CreatedAt.IsZero() {
			latencySum += t.CompletedAt.Sub(t.CreatedAt).Hours()
			latencyCount++
		}
	}
	if latencyCount > 0 {
		out.AvgCompletionHours = math.Round(latencySum/float64(latencyCount)*10) / 10
	}

	return analytics.TaskAnalyticsOutput{Analytics: out, TimeRangeDays: days}, nil
}
