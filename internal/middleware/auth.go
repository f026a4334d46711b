package middleware

import (
	"github.com/gin-gonic/gin"

	"integral-analytics/internal/model"
	"integral-analytics/pkg/response"
)

// scopeKey is the gin context key the caller scope is stored under.
const scopeKey = "scope"

// userIDHeader identifies the caller. Upstream auth terminates the
// session and forwards the verified user id in this header.
const userIDHeader = "X-User-ID"

// Auth requires a caller identity on the request and stores it as a
// scope for downstream handlers.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			m.l.Warnf(c.Request.Context(), "auth: missing %s header", userIDHeader)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// ScopeFromContext returns the scope stored by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
