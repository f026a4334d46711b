package analytics

import "integral-analytics/internal/model"

// DefaultTimeRangeDays is the trailing window applied when a report
// request carries no explicit range.
const DefaultTimeRangeDays = 30

// MaxTimeRangeDays bounds report windows.
const MaxTimeRangeDays = 365

// PlaceholderPeakHours is returned for peak-productivity hours. Session
// records carry day granularity only, so real peak hours cannot be
// computed yet; the output marks the list as not computed.
var PlaceholderPeakHours = []int{9, 10, 11, 14, 15}

// ReportInput selects the trailing window for report builders.
// Zero TimeRangeDays means DefaultTimeRangeDays.
type ReportInput struct {
	TimeRangeDays int
}

// ProductivityMetrics is the headline metric set for the dashboard.
// All figures are whole percentages except ComplexityScore (one decimal).
type ProductivityMetrics struct {
	CompletionRate  float64
	VelocityTrend   float64
	BurnoutRisk     float64
	EfficiencyScore float64
	ComplexityScore float64
}

// ProductivityMetricsOutput is the result of GetProductivityMetrics.
type ProductivityMetricsOutput struct {
	Metrics       ProductivityMetrics
	TimeRangeDays int
}

// TimeAnalytics aggregates focus-time figures over a window.
type TimeAnalytics struct {
	TotalFocusMS      int64
	AverageDailyMS    int64 // total over distinct active days
	FocusConsistency  float64
	PeakHours         []int
	PeakHoursComputed bool
}

// TimeAnalyticsOutput is the result of GetTimeAnalytics.
type TimeAnalyticsOutput struct {
	Analytics     TimeAnalytics
	TimeRangeDays int
}

// TaskAnalytics aggregates task counts over a window.
type TaskAnalytics struct {
	TotalTasks           int
	CompletedTasks       int
	OverdueTasks         int
	AvgCompletionHours   float64
	PriorityDistribution map[model.TaskPriority]int
}

// TaskAnalyticsOutput is the result of GetTaskAnalytics.
type TaskAnalyticsOutput struct {
	Analytics     TaskAnalytics
	TimeRangeDays int
}

// TrendPoint is one day in a complexity trend series.
type TrendPoint struct {
	Date       string // ISO YYYY-MM-DD
	Complexity float64
}

// ComplexityTrendsOutput is the result of GetComplexityTrends. Points
// holds exactly TimeRangeDays entries, oldest first.
type ComplexityTrendsOutput struct {
	Points        []TrendPoint
	TimeRangeDays int
}

// StreaksOutput is the result of GetStreaks.
type StreaksOutput struct {
	Current int
	Longest int
}

// InsightsOutput is the result of GetInsights.
type InsightsOutput struct {
	Insights []string
}

// RecordSessionInput is the input for RecordFocusSession.
type RecordSessionInput struct {
	Date       string // ISO YYYY-MM-DD
	DurationMS int64
}

// RecordSessionOutput reports whether a session row was persisted.
// Created is false for discarded non-positive durations.
type RecordSessionOutput struct {
	Created bool
	Session model.FocusSession
}

// ListSessionsInput is the input for ListFocusSessions. Empty bounds are
// unbounded.
type ListSessionsInput struct {
	StartDate string
	EndDate   string
}

// ListSessionsOutput is the result of ListFocusSessions.
type ListSessionsOutput struct {
	Sessions []model.FocusSession
	Count    int
}

// WeeklyFocusInput selects an inclusive date range to sum.
type WeeklyFocusInput struct {
	WeekStart string
	WeekEnd   string
}

// WeeklyFocusOutput is the result of GetWeeklyFocusTotal.
type WeeklyFocusOutput struct {
	TotalMS int64
}
