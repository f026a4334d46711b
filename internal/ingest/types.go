package ingest

// SecurityConfig holds focus-tracker webhook security settings.
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute per source
}

// focusPayload is the body posted by focus-tracker clients when a
// timer finishes.
type focusPayload struct {
	UserID     string `json:"user_id"`
	Date       string `json:"date"`
	DurationMS int64  `json:"duration_ms"`
}
