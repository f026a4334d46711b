package usecase

import (
	"context"

	"integral-analytics/internal/analytics"
	"integral-analytics/internal/analytics/insight"
	"integral-analytics/internal/analytics/metrics"
	"integral-analytics/internal/model"
)

// GetInsights derives natural-language insights from the window metrics.
// The average daily focus feeding the rules is taken over the trailing 7
// calendar days (zero-filled), matching the burnout inconsistency window.
func (uc *implUseCase) GetInsights(ctx context.Context, sc model.Scope, input analytics.ReportInput) (analytics.InsightsOutput, error) {
	days := uc.resolveDays(input)
	now := uc.now()

	tasks, err := uc.windowTasks(ctx, sc, days, now)
	if err != nil {
		uc.l.Errorf(ctx, "GetInsights: list tasks: %v", err)
		return analytics.InsightsOutput{}, err
	}
	sessions, err := uc.windowSessions(ctx, sc, days, now)
	if err != nil {
		uc.l.Errorf(ctx, "GetInsights: list sessions: %v", err)
		return analytics.InsightsOutput{}, err
	}

	var weekTotal float64
	for _, v := range metrics.DailyFocusSeries(sessions, metrics.VelocityWindowDays, now) {
		weekTotal += v
	}

	var highTotal, highDone int
	for _, t := range tasks {
		if t.Priority != model.TaskPriorityHigh {
			continue
		}
		highTotal++
		if t.IsCompleted() {
			highDone++
		}
	}
	highCompletion := metrics.FullCompletionRate
	if highTotal > 0 {
		highCompletion = float64(highDone) / float64(highTotal) * 100
	}

	insights := insight.Generate(insight.Input{
		VelocityTrend:          metrics.VelocityTrend(tasks, now).Trend,
		BurnoutRisk:            metrics.BurnoutRisk(tasks, sessions, now),
		EfficiencyScore:        metrics.EfficiencyScore(tasks),
		AvgDailyFocusMS:        weekTotal / metrics.VelocityWindowDays,
		HighPriorityCompletion: highCompletion,
	})

	return analytics.InsightsOutput{Insights: insights}, nil
}
