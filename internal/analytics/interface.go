package analytics

import (
	"context"

	"integral-analytics/internal/model"
)

// UseCase defines the business logic interface for the analytics domain.
type UseCase interface {
	// GetProductivityMetrics builds the headline dashboard metrics over a
	// trailing window of days.
	GetProductivityMetrics(ctx context.Context, sc model.Scope, input ReportInput) (ProductivityMetricsOutput, error)

	// GetTimeAnalytics builds focus-time totals and consistency over a
	// trailing window.
	GetTimeAnalytics(ctx context.Context, sc model.Scope, input ReportInput) (TimeAnalyticsOutput, error)

	// GetTaskAnalytics builds task counts and completion latency over a
	// trailing window.
	GetTaskAnalytics(ctx context.Context, sc model.Scope, input ReportInput) (TaskAnalyticsOutput, error)

	// GetComplexityTrends builds one mean-complexity point per calendar
	// day in the window, oldest to newest.
	GetComplexityTrends(ctx context.Context, sc model.Scope, input ReportInput) (ComplexityTrendsOutput, error)

	// GetStreaks computes current and longest consecutive-day focus
	// streaks over the full session history.
	GetStreaks(ctx context.Context, sc model.Scope) (StreaksOutput, error)

	// GetInsights derives prioritized natural-language insights from the
	// computed metrics.
	GetInsights(ctx context.Context, sc model.Scope, input ReportInput) (InsightsOutput, error)

	// RecordFocusSession persists one completed focus interval.
	// Non-positive durations are a benign no-op, not an error.
	RecordFocusSession(ctx context.Context, sc model.Scope, input RecordSessionInput) (RecordSessionOutput, error)

	// ListFocusSessions returns the user's sessions within an optional
	// inclusive date range, newest first.
	ListFocusSessions(ctx context.Context, sc model.Scope, input ListSessionsInput) (ListSessionsOutput, error)

	// GetWeeklyFocusTotal sums focus time between two dates inclusive.
	GetWeeklyFocusTotal(ctx context.Context, sc model.Scope, input WeeklyFocusInput) (WeeklyFocusOutput, error)
}
