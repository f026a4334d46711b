package usecase

import (
	"context"

	"integral-analytics/internal/analytics"
	"integral-analytics/internal/analytics/metrics"
	"integral-analytics/internal/model"
)

// GetTimeAnalytics builds focus-time totals, the per-active-day average,
// and the consistency score over the trailing window. Peak hours stay a
// placeholder until sessions carry start times.
func (uc *implUseCase) GetTimeAnalytics(ctx context.Context, sc model.Scope, input analytics.ReportInput) (analytics.TimeAnalyticsOutput, error) {
	days := uc.resolveDays(input)
	now := uc.now()

	sessions, err := uc.windowSessions(ctx, sc, days, now)
	if err != nil {
		uc.l.Errorf(ctx, "GetTimeAnalytics: list sessions: %v", err)
		return analytics.TimeAnalyticsOutput{}, err
	}

	total := sumDurations(sessions)

	activeDays := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		activeDays[s.Date] = struct{}{}
	}
	var avgDaily int64
	if len(activeDays) > 0 {
		avgDaily = total / int64(len(activeDays))
	}

	return analytics.TimeAnalyticsOutput{
		Analytics: analytics.TimeAnalytics{
			TotalFocusMS:      total,
			AverageDailyMS:    avgDaily,
			FocusConsistency:  metrics.FocusConsistency(sessions, days, now),
			PeakHours:         analytics.PlaceholderPeakHours,
			PeakHoursComputed: false,
		},
		TimeRangeDays: days,
	}, nil
}
