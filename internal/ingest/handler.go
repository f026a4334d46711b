package ingest

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"integral-analytics/internal/analytics"
	"integral-analytics/internal/model"
)

// signatureHeader carries the HMAC-SHA256 payload signature.
const signatureHeader = "X-Signature-256"

// HandleFocusWebhook accepts a focus session from a tracker client. The
// request must pass the IP whitelist, carry a valid payload signature,
// and stay under the per-source rate limit.
func (h *Handler) HandleFocusWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "focus webhook: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "focus webhook: read body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	if err := h.security.ValidateSignature(body, c.GetHeader(signatureHeader)); err != nil {
		h.l.Warnf(ctx, "focus webhook: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var payload focusPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.l.Warnf(ctx, "focus webhook: parse payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}
	if payload.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	if err := h.security.CheckRateLimit(payload.UserID); err != nil {
		h.l.Warnf(ctx, "focus webhook: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	out, err := h.analyticsUC.RecordFocusSession(ctx, model.Scope{UserID: payload.UserID}, analytics.RecordSessionInput{
		Date:       payload.Date,
		DurationMS: payload.DurationMS,
	})
	if err != nil {
		h.l.Errorf(ctx, "focus webhook: record session: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"created": out.Created})
}
