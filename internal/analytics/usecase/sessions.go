package usecase

import (
	"context"

	"integral-analytics/internal/analytics"
	"integral-analytics/internal/model"
	sessionRepo "integral-analytics/internal/session/repository"
	"integral-analytics/pkg/dateutil"
)

// RecordFocusSession persists one completed focus interval. A
// non-positive duration is discarded as a benign no-op — UI timers
// occasionally emit zero-length intervals and those must not surface as
// errors to the client.
func (uc *implUseCase) RecordFocusSession(ctx context.Context, sc model.Scope, input analytics.RecordSessionInput) (analytics.RecordSessionOutput, error) {
	if sc.UserID == "" {
		return analytics.RecordSessionOutput{}, analytics.ErrMissingUserID
	}
	if input.DurationMS <= 0 {
		uc.l.Infof(ctx, "RecordFocusSession: discarding non-positive duration %d for user=%s", input.DurationMS, sc.UserID)
		return analytics.RecordSessionOutput{Created: false}, nil
	}
	if _, err := dateutil.ParseDay(input.Date); err != nil {
		return analytics.RecordSessionOutput{}, analytics.ErrInvalidDate
	}

	created, err := uc.sessions.CreateSession(ctx, sessionRepo.CreateSessionOptions{
		UserID:     sc.UserID,
		Date:       input.Date,
		DurationMS: input.DurationMS,
	})
	if err != nil {
		uc.l.Errorf(ctx, "RecordFocusSession: create: %v", err)
		return analytics.RecordSessionOutput{}, err
	}

	return analytics.RecordSessionOutput{Created: true, Session: created}, nil
}

// ListFocusSessions returns the user's sessions within an optional
// inclusive date range, newest first. An empty user id returns an empty
// list rather than an error so read paths degrade quietly.
func (uc *implUseCase) ListFocusSessions(ctx context.Context, sc model.Scope, input analytics.ListSessionsInput) (analytics.ListSessionsOutput, error) {
	if sc.UserID == "" {
		return analytics.ListSessionsOutput{Sessions: []model.FocusSession{}}, nil
	}
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return analytics.ListSessionsOutput{}, err
	}

	sessions, err := uc.sessions.ListSessions(ctx, sessionRepo.ListSessionsOptions{
		UserID:    sc.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ListFocusSessions: list: %v", err)
		return analytics.ListSessionsOutput{}, err
	}

	return analytics.ListSessionsOutput{Sessions: sessions, Count: len(sessions)}, nil
}

// GetWeeklyFocusTotal sums the user's focus time between two dates
// inclusive.
func (uc *implUseCase) GetWeeklyFocusTotal(ctx context.Context, sc model.Scope, input analytics.WeeklyFocusInput) (analytics.WeeklyFocusOutput, error) {
	if sc.UserID == "" {
		return analytics.WeeklyFocusOutput{}, nil
	}
	if err := validateRange(input.WeekStart, input.WeekEnd); err != nil {
		return analytics.WeeklyFocusOutput{}, err
	}

	sessions, err := uc.sessions.ListSessions(ctx, sessionRepo.ListSessionsOptions{
		UserID:    sc.UserID,
		StartDate: input.WeekStart,
		EndDate:   input.WeekEnd,
	})
	if err != nil {
		uc.l.Errorf(ctx, "GetWeeklyFocusTotal: list: %v", err)
		return analytics.WeeklyFocusOutput{}, err
	}

	return analytics.WeeklyFocusOutput{TotalMS: sumDurations(sessions)}, nil
}

// validateRange checks optional ISO bounds and their ordering.
func validateRange(start, end string) error {
	if start != "" {
		if _, err := dateutil.ParseDay(start); err != nil {
			return analytics.ErrInvalidDate
		}
	}
	if end != "" {
		if _, err := dateutil.ParseDay(end); err != nil {
			return analytics.ErrInvalidDate
		}
	}
	if start != "" && end != "" && start > end {
		return analytics.ErrInvalidDateRange
	}
	return nil
}
