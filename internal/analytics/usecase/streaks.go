package usecase

import (
	"context"

	"integral-analytics/internal/analytics"
	"integral-analytics/internal/analytics/metrics"
	"integral-analytics/internal/model"
	sessionRepo "integral-analytics/internal/session/repository"
)

// GetStreaks computes current and longest consecutive-day focus streaks
// over the user's full session history.
func (uc *implUseCase) GetStreaks(ctx context.Context, sc model.Scope) (analytics.StreaksOutput, error) {
	sessions, err := uc.sessions.ListSessions(ctx, sessionRepo.ListSessionsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "GetStreaks: list sessions: %v", err)
		return analytics.StreaksOutput{}, err
	}

	s := metrics.SessionStreaks(sessions, uc.now())
	return analytics.StreaksOutput{Current: s.Current, Longest: s.Longest}, nil
}
