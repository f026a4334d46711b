package usecase

import (
	"context"
	"time"

	"integral-analytics/internal/analytics"
	"integral-analytics/internal/model"
	sessionRepo "integral-analytics/internal/session/repository"
	taskRepo "integral-analytics/internal/task/repository"
	"integral-analytics/pkg/dateutil"
)

// resolveDays normalizes the requested window to [1, MaxTimeRangeDays],
// falling back to the configured default.
func (uc *implUseCase) resolveDays(input analytics.ReportInput) int {
	days := input.TimeRangeDays
	if days <= 0 {
		return uc.defaultDays
	}
	if days > analytics.MaxTimeRangeDays {
		return analytics.MaxTimeRangeDays
	}
	return days
}

// windowTasks fetches the user's tasks and keeps those created or due
// within the trailing window.
func (uc *implUseCase) windowTasks(ctx context.Context, sc model.Scope, days int, now time.Time) ([]model.Task, error) {
	all, err := uc.tasks.ListTasks(ctx, taskRepo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		return nil, err
	}

	start := dateutil.WindowStart(now, days)
	filtered := make([]model.Task, 0, len(all))
	for _, t := range all {
		if inWindow(t.CreatedAt, start, now) || inWindow(t.DueDate, start, now) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// windowSessions fetches the user's sessions dated within the trailing
// window.
func (uc *implUseCase) windowSessions(ctx context.Context, sc model.Scope, days int, now time.Time) ([]model.FocusSession, error) {
	return uc.sessions.ListSessions(ctx, sessionRepo.ListSessionsOptions{
		UserID:    sc.UserID,
		StartDate: dateutil.FormatDay(dateutil.WindowStart(now, days)),
		EndDate:   dateutil.FormatDay(now),
	})
}

func inWindow(t time.Time, start, end time.Time) bool {
	return !t.IsZero() && !t.Before(start) && !t.After(end)
}

func sumDurations(sessions []model.FocusSession) int64 {
	var total int64
	for _, s := range sessions {
		total += s.DurationMS
	}
	return total
}
