package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"integral-analytics/internal/ingest"
	"integral-analytics/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	postgresDB *sql.DB

	analyticsDefaultDays int
	analyticsLocation    *time.Location

	webhookEnabled  bool
	webhookSecurity ingest.SecurityConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB

	// AnalyticsDefaultDays is the report window used when a request
	// carries none. AnalyticsLocation anchors "today" for day-based
	// metrics; nil means UTC.
	AnalyticsDefaultDays int
	AnalyticsLocation    *time.Location

	WebhookEnabled  bool
	WebhookSecurity ingest.SecurityConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                    logger,
		gin:                  gin.Default(),
		port:                 cfg.Port,
		mode:                 cfg.Mode,
		environment:          cfg.Environment,
		postgresDB:           cfg.PostgresDB,
		analyticsDefaultDays: cfg.AnalyticsDefaultDays,
		analyticsLocation:    cfg.AnalyticsLocation,
		webhookEnabled:       cfg.WebhookEnabled,
		webhookSecurity:      cfg.WebhookSecurity,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	return nil
}
