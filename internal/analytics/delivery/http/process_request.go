package http

import (
	"github.com/gin-gonic/gin"

	"integral-analytics/internal/middleware"
	"integral-analytics/internal/model"
)

// processScope extracts the caller scope stored by the auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, bool) {
	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		h.l.Warnf(c.Request.Context(), "scope missing on authenticated route %s", c.FullPath())
	}
	return sc, ok
}

// processReportReq binds the trailing-window query parameters.
func (h *handler) processReportReq(c *gin.Context) (reportReq, error) {
	var req reportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateSessionReq binds and validates the create session body.
func (h *handler) processCreateSessionReq(c *gin.Context) (createSessionReq, error) {
	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListSessionsReq binds the session list query parameters.
func (h *handler) processListSessionsReq(c *gin.Context) (listSessionsReq, error) {
	var req listSessionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processWeeklyFocusReq binds and validates the weekly total query.
func (h *handler) processWeeklyFocusReq(c *gin.Context) (weeklyFocusReq, error) {
	var req weeklyFocusReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
