package http

import (
	"github.com/gin-gonic/gin"

	"integral-analytics/internal/analytics"
	"integral-analytics/pkg/log"
)

// Handler is the public interface for the analytics HTTP delivery layer.
type Handler interface {
	GetProductivity(c *gin.Context)
	GetTimeAnalytics(c *gin.Context)
	GetTaskAnalytics(c *gin.Context)
	GetComplexityTrends(c *gin.Context)
	GetStreaks(c *gin.Context)
	GetInsights(c *gin.Context)
	CreateFocusSession(c *gin.Context)
	ListFocusSessions(c *gin.Context)
	GetWeeklyFocusTotal(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc analytics.UseCase
}

// New creates a new HTTP handler for the analytics domain.
func New(l log.Logger, uc analytics.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
