package repository

import (
	"context"

	"integral-analytics/internal/model"
)

// Repository defines all data access methods for focus sessions.
type Repository interface {
	// CreateSession inserts one focus session row and returns the
	// created entity mapped to the domain shape.
	CreateSession(ctx context.Context, opt CreateSessionOptions) (model.FocusSession, error)

	// ListSessions returns a user's sessions within an optional inclusive
	// date range, ordered by date descending.
	ListSessions(ctx context.Context, opt ListSessionsOptions) ([]model.FocusSession, error)
}
