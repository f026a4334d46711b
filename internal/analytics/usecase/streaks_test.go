package usecase

import (
	"context"
	"errors"
	"testing"

	"integral-analytics/internal/model"
)

func TestGetStreaks(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("run ending today counts as current", func(t *testing.T) {
		sessions := []model.FocusSession{
			{UserID: "u1", Date: "2024-05-13", DurationMS: 1000},
			{UserID: "u1", Date: "2024-05-14", DurationMS: 1000},
			{UserID: "u1", Date: "2024-05-15", DurationMS: 1000},
		}
		uc := newTestUseCase(&mockTaskRepo{}, &mockSessionRepo{sessions: sessions}, testNow)

		out, err := uc.GetStreaks(ctx, sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Current != 3 || out.Longest != 3 {
			t.Errorf("got current=%d longest=%d, want 3/3", out.Current, out.Longest)
		}
	})

	t.Run("stale history keeps longest but zeroes current", func(t *testing.T) {
		sessions := []model.FocusSession{
			{UserID: "u1", Date: "2024-05-01", DurationMS: 1000},
			{UserID: "u1", Date: "2024-05-02", DurationMS: 1000},
			{UserID: "u1", Date: "2024-05-03", DurationMS: 1000},
			{UserID: "u1", Date: "2024-05-04", DurationMS: 1000},
		}
		uc := newTestUseCase(&mockTaskRepo{}, &mockSessionRepo{sessions: sessions}, testNow)

		out, err := uc.GetStreaks(ctx, sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Current != 0 {
			t.Errorf("Current = %d, want 0", out.Current)
		}
		if out.Longest != 4 {
			t.Errorf("Longest = %d, want 4", out.Longest)
		}
	})

	t.Run("no history", func(t *testing.T) {
		uc := newTestUseCase(&mockTaskRepo{}, &mockSessionRepo{}, testNow)

		out, err := uc.GetStreaks(ctx, sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Current != 0 || out.Longest != 0 {
			t.Errorf("got current=%d longest=%d, want zeros", out.Current, out.Longest)
		}
	})

	t.Run("streaks read full history not a window", func(t *testing.T) {
		repo := &mockSessionRepo{}
		uc := newTestUseCase(&mockTaskRepo{}, repo, testNow)

		if _, err := uc.GetStreaks(ctx, sc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.lastList.StartDate != "" || repo.lastList.EndDate != "" {
			t.Errorf("streaks queried bounded range [%s, %s], want unbounded", repo.lastList.StartDate, repo.lastList.EndDate)
		}
	})

	t.Run("repo failure propagates", func(t *testing.T) {
		boom := errors.New("db down")
		uc := newTestUseCase(&mockTaskRepo{}, &mockSessionRepo{listErr: boom}, testNow)

		if _, err := uc.GetStreaks(ctx, sc); !errors.Is(err, boom) {
			t.Errorf("expected repo error, got %v", err)
		}
	})
}
