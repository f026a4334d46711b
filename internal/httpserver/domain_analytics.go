package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	analyticsHTTP "integral-analytics/internal/analytics/delivery/http"
	analyticsUC "integral-analytics/internal/analytics/usecase"
	"integral-analytics/internal/ingest"
	"integral-analytics/internal/middleware"
	sessionRepo "integral-analytics/internal/session/repository/postgre"
	taskRepo "integral-analytics/internal/task/repository/postgre"
)

// setupAnalyticsDomain initializes the analytics domain and registers
// its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repositories:  repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:       uc := mydomainUC.New(srv.l, repo)
//  3. Create HTTP Handler:  h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:      mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupAnalyticsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repositories
	tasks := taskRepo.New(srv.postgresDB, srv.l)
	sessions := sessionRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := analyticsUC.New(srv.l, tasks, sessions).
		WithDefaultWindow(srv.analyticsDefaultDays)
	if srv.analyticsLocation != nil {
		loc := srv.analyticsLocation
		uc.WithClock(func() time.Time { return time.Now().In(loc) })
	}

	// 3. HTTP Handler
	h := analyticsHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/analytics/* and /api/v1/focus-sessions
	analyticsHTTP.RegisterRoutes(api, h, mw)

	// Tracker webhook ingests sessions without the Auth middleware; the
	// payload signature authenticates the sender instead.
	if srv.webhookEnabled {
		wh := ingest.NewHandler(uc, srv.webhookSecurity, srv.l)
		srv.gin.POST("/webhook/focus", wh.HandleFocusWebhook)
		srv.l.Infof(ctx, "Focus webhook route registered at POST /webhook/focus")
	} else {
		srv.l.Infof(ctx, "Focus webhook disabled, skipping route")
	}

	srv.l.Infof(ctx, "Analytics domain registered")
	return nil
}
