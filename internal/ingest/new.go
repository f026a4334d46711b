package ingest

import (
	"integral-analytics/internal/analytics"
	pkgLog "integral-analytics/pkg/log"
)

// Handler ingests focus sessions posted by tracker clients.
type Handler struct {
	analyticsUC analytics.UseCase
	security    *SecurityValidator
	l           pkgLog.Logger
}

func NewHandler(
	analyticsUC analytics.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		analyticsUC: analyticsUC,
		security:    NewSecurityValidator(securityConfig),
		l:           l,
	}
}
