package http

import (
	"integral-analytics/internal/analytics"
	"integral-analytics/internal/model"
)

// --- Request DTOs ---

type reportReq struct {
	Days int `form:"days"`
}

func (r reportReq) toInput() analytics.ReportInput {
	return analytics.ReportInput{TimeRangeDays: r.Days}
}

// DurationMS deliberately carries no required binding: zero and negative
// durations must reach the use case, which discards them as a no-op.
type createSessionReq struct {
	Date       string `json:"date"        binding:"required"`
	DurationMS int64  `json:"duration_ms"`
}

func (r createSessionReq) toInput() analytics.RecordSessionInput {
	return analytics.RecordSessionInput{
		Date:       r.Date,
		DurationMS: r.DurationMS,
	}
}

type listSessionsReq struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

func (r listSessionsReq) toInput() analytics.ListSessionsInput {
	return analytics.ListSessionsInput{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

type weeklyFocusReq struct {
	WeekStart string `form:"week_start" binding:"required"`
	WeekEnd   string `form:"week_end"   binding:"required"`
}

func (r weeklyFocusReq) toInput() analytics.WeeklyFocusInput {
	return analytics.WeeklyFocusInput{
		WeekStart: r.WeekStart,
		WeekEnd:   r.WeekEnd,
	}
}

// --- Response DTOs ---

type productivityResp struct {
	CompletionRate  float64 `json:"completion_rate"`
	VelocityTrend   float64 `json:"velocity_trend"`
	BurnoutRisk     float64 `json:"burnout_risk"`
	EfficiencyScore float64 `json:"efficiency_score"`
	ComplexityScore float64 `json:"complexity_score"`
	TimeRangeDays   int     `json:"time_range_days"`
}

func (h *handler) newProductivityResp(out analytics.ProductivityMetricsOutput) productivityResp {
	return productivityResp{
		CompletionRate:  out.Metrics.CompletionRate,
		VelocityTrend:   out.Metrics.VelocityTrend,
		BurnoutRisk:     out.Metrics.BurnoutRisk,
		EfficiencyScore: out.Metrics.EfficiencyScore,
		ComplexityScore: out.Metrics.ComplexityScore,
		TimeRangeDays:   out.TimeRangeDays,
	}
}

type timeAnalyticsResp struct {
	TotalFocusMS      int64   `json:"total_focus_ms"`
	AverageDailyMS    int64   `json:"average_daily_ms"`
	FocusConsistency  float64 `json:"focus_consistency"`
	PeakHours         []int   `json:"peak_hours"`
	PeakHoursComputed bool    `json:"peak_hours_computed"`
	TimeRangeDays     int     `json:"time_range_days"`
}

func (h *handler) newTimeAnalyticsResp(out analytics.TimeAnalyticsOutput) timeAnalyticsResp {
	return timeAnalyticsResp{
		TotalFocusMS:      out.Analytics.TotalFocusMS,
		AverageDailyMS:    out.Analytics.AverageDailyMS,
		FocusConsistency:  out.Analytics.FocusConsistency,
		PeakHours:         out.Analytics.PeakHours,
		PeakHoursComputed: out.Analytics.PeakHoursComputed,
		TimeRangeDays:     out.TimeRangeDays,
	}
}

type taskAnalyticsResp struct {
	TotalTasks           int            `json:"total_tasks"`
	CompletedTasks       int            `json:"completed_tasks"`
	OverdueTasks         int            `json:"overdue_tasks"`
	AvgCompletionHours   float64        `json:"avg_completion_hours"`
	PriorityDistribution map[string]int `json:"priority_distribution"`
	TimeRangeDays        int            `json:"time_range_days"`
}

func (h *handler) newTaskAnalyticsResp(out analytics.TaskAnalyticsOutput) taskAnalyticsResp {
	dist := make(map[string]int, len(out.Analytics.PriorityDistribution))
	for p, n := range out.Analytics.PriorityDistribution {
		dist[string(p)] = n
	}
	return taskAnalyticsResp{
		TotalTasks:           out.Analytics.TotalTasks,
		CompletedTasks:       out.Analytics.CompletedTasks,
		OverdueTasks:         out.Analytics.OverdueTasks,
		AvgCompletionHours:   out.Analytics.AvgCompletionHours,
		PriorityDistribution: dist,
		TimeRangeDays:        out.TimeRangeDays,
	}
}

type trendPointResp struct {
	Date       string  `json:"date"`
	Complexity float64 `json:"complexity"`
}

type complexityTrendsResp struct {
	Points        []trendPointResp `json:"points"`
	TimeRangeDays int              `json:"time_range_days"`
}

func (h *handler) newComplexityTrendsResp(out analytics.ComplexityTrendsOutput) complexityTrendsResp {
	points := make([]trendPointResp, len(out.Points))
	for i, p := range out.Points {
		points[i] = trendPointResp{Date: p.Date, Complexity: p.Complexity}
	}
	return complexityTrendsResp{Points: points, TimeRangeDays: out.TimeRangeDays}
}

type streaksResp struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

func (h *handler) newStreaksResp(out analytics.StreaksOutput) streaksResp {
	return streaksResp{CurrentStreak: out.Current, LongestStreak: out.Longest}
}

type insightsResp struct {
	Insights []string `json:"insights"`
}

func (h *handler) newInsightsResp(out analytics.InsightsOutput) insightsResp {
	if out.Insights == nil {
		out.Insights = []string{}
	}
	return insightsResp{Insights: out.Insights}
}

type sessionResp struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Date       string `json:"date"`
	DurationMS int64  `json:"duration_ms"`
}

func newSessionResp(s model.FocusSession) sessionResp {
	return sessionResp{
		ID:         s.ID,
		UserID:     s.UserID,
		Date:       s.Date,
		DurationMS: s.DurationMS,
	}
}

type createSessionResp struct {
	Created bool         `json:"created"`
	Session *sessionResp `json:"session,omitempty"`
}

func (h *handler) newCreateSessionResp(out analytics.RecordSessionOutput) createSessionResp {
	resp := createSessionResp{Created: out.Created}
	if out.Created {
		s := newSessionResp(out.Session)
		resp.Session = &s
	}
	return resp
}

type listSessionsResp struct {
	Sessions []sessionResp `json:"sessions"`
	Count    int           `json:"count"`
}

func (h *handler) newListSessionsResp(out analytics.ListSessionsOutput) listSessionsResp {
	sessions := make([]sessionResp, len(out.Sessions))
	for i, s := range out.Sessions {
		sessions[i] = newSessionResp(s)
	}
	return listSessionsResp{Sessions: sessions, Count: out.Count}
}

type weeklyFocusResp struct {
	TotalMS int64 `json:"total_ms"`
}

func (h *handler) newWeeklyFocusResp(out analytics.WeeklyFocusOutput) weeklyFocusResp {
	return weeklyFocusResp{TotalMS: out.TotalMS}
}
