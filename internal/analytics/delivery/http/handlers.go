package http

import (
	"github.com/gin-gonic/gin"

	"integral-analytics/pkg/response"
)

// GetProductivity godoc
// @Summary     Productivity metrics
// @Description Returns completion rate, velocity trend, burnout risk, efficiency and complexity scores over a trailing window.
// @Tags        Analytics
// @Accept      json
// @Produce     json
// @Param       X-User-ID  header string true  "Caller user id"
// @Param       days       query  int    false "Trailing window in days (default 30, max 365)"
// @Success     200 {object} productivityResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/productivity [GET]
func (h *handler) GetProductivity(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	req, err := h.processReportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetProductivityMetrics(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetProductivityMetrics: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newProductivityResp(output))
}

// GetTimeAnalytics godoc
// @Summary     Focus time analytics
// @Description Returns total and average daily focus time plus the consistency score over a trailing window.
// @Tags        Analytics
// @Accept      json
// @Produce     json
// @Param       X-User-ID  header string true  "Caller user id"
// @Param       days       query  int    false "Trailing window in days (default 30, max 365)"
// @Success     200 {object} timeAnalyticsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/time [GET]
func (h *handler) GetTimeAnalytics(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	req, err := h.processReportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetTimeAnalytics(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetTimeAnalytics: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newTimeAnalyticsResp(output))
}

// GetTaskAnalytics godoc
// @Summary     Task analytics
// @Description Returns task counts, completion latency and the priority distribution over a trailing window.
// @Tags        Analytics
// @Accept      json
// @Produce     json
// @Param       X-User-ID  header string true  "Caller user id"
// @Param       days       query  int    false "Trailing window in days (default 30, max 365)"
// @Success     200 {object} taskAnalyticsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/tasks [GET]
func (h *handler) GetTaskAnalytics(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	req, err := h.processReportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetTaskAnalytics(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetTaskAnalytics: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newTaskAnalyticsResp(output))
}

// GetComplexityTrends godoc
// @Summary     Complexity trends
// @Description Returns one mean-complexity point per calendar day in the window, oldest first.
// @Tags        Analytics
// @Accept      json
// @Produce     json
// @Param       X-User-ID  header string true  "Caller user id"
// @Param       days       query  int    false "Trailing window in days (default 30, max 365)"
// @Success     200 {object} complexityTrendsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/complexity-trends [GET]
func (h *handler) GetComplexityTrends(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	req, err := h.processReportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetComplexityTrends(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetComplexityTrends: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newComplexityTrendsResp(output))
}

// GetStreaks godoc
// @Summary     Focus streaks
// @Description Returns current and longest consecutive-day focus streaks over the full session history.
// @Tags        Analytics
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user id"
// @Success     200 {object} streaksResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/streaks [GET]
func (h *handler) GetStreaks(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.GetStreaks(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetStreaks: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newStreaksResp(output))
}

// GetInsights godoc
// @Summary     Insights
// @Description Returns up to three natural-language insights derived from the window metrics.
// @Tags        Analytics
// @Accept      json
// @Produce     json
// @Param       X-User-ID  header string true  "Caller user id"
// @Param       days       query  int    false "Trailing window in days (default 30, max 365)"
// @Success     200 {object} insightsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/insights [GET]
func (h *handler) GetInsights(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	req, err := h.processReportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetInsights(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetInsights: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newInsightsResp(output))
}

// CreateFocusSession godoc
// @Summary     Record a focus session
// @Description Persists one completed focus interval. Non-positive durations are discarded without error.
// @Tags        FocusSessions
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string           true "Caller user id"
// @Param       body      body   createSessionReq true "Session data"
// @Success     200 {object} createSessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/focus-sessions [POST]
func (h *handler) CreateFocusSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	req, err := h.processCreateSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.RecordFocusSession(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RecordFocusSession: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newCreateSessionResp(output))
}

// ListFocusSessions godoc
// @Summary     List focus sessions
// @Description Returns the caller's sessions within an optional inclusive date range, newest first.
// @Tags        FocusSessions
// @Accept      json
// @Produce     json
// @Param       X-User-ID  header string true  "Caller user id"
// @Param       start_date query  string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param       end_date   query  string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success     200 {object} listSessionsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/focus-sessions [GET]
func (h *handler) ListFocusSessions(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	req, err := h.processListSessionsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListFocusSessions(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListFocusSessions: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListSessionsResp(output))
}

// GetWeeklyFocusTotal godoc
// @Summary     Weekly focus total
// @Description Sums the caller's focus time between two dates inclusive.
// @Tags        FocusSessions
// @Accept      json
// @Produce     json
// @Param       X-User-ID  header string true "Caller user id"
// @Param       week_start query  string true "Inclusive start (YYYY-MM-DD)"
// @Param       week_end   query  string true "Inclusive end (YYYY-MM-DD)"
// @Success     200 {object} weeklyFocusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/focus-sessions/weekly-total [GET]
func (h *handler) GetWeeklyFocusTotal(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	req, err := h.processWeeklyFocusReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetWeeklyFocusTotal(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetWeeklyFocusTotal: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newWeeklyFocusResp(output))
}
