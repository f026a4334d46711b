package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"integral-analytics/internal/analytics"
	"integral-analytics/pkg/response"
)

// mapError translates use-case errors into HTTP responses. Domain
// validation errors surface as 400 with their message; anything else is
// an opaque 500.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, analytics.ErrMissingUserID):
		response.ErrorWithStatus(c, http.StatusBadRequest, err)
	case errors.Is(err, analytics.ErrInvalidDate),
		errors.Is(err, analytics.ErrInvalidDateRange):
		response.ErrorWithStatus(c, http.StatusBadRequest, err)
	default:
		response.InternalError(c, err)
	}
}
