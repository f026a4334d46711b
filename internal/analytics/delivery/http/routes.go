package http

import (
	"github.com/gin-gonic/gin"

	"integral-analytics/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. All
// routes require the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	reports := rg.Group("/analytics")
	{
		reports.GET("/productivity", mw.Auth(), h.GetProductivity)
		reports.GET("/time", mw.Auth(), h.GetTimeAnalytics)
		reports.GET("/tasks", mw.Auth(), h.GetTaskAnalytics)
		reports.GET("/complexity-trends", mw.Auth(), h.GetComplexityTrends)
		reports.GET("/streaks", mw.Auth(), h.GetStreaks)
		reports.GET("/insights", mw.Auth(), h.GetInsights)
	}

	sessions := rg.Group("/focus-sessions")
	{
		sessions.POST("", mw.Auth(), h.CreateFocusSession)
		sessions.GET("", mw.Auth(), h.ListFocusSessions)
		sessions.GET("/weekly-total", mw.Auth(), h.GetWeeklyFocusTotal)
	}
}
