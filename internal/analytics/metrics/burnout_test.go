package metrics_test

import (
	"testing"
	"time"

	"integral-analytics/internal/analytics/metrics"
	"integral-analytics/internal/model"
)

func overdueTask(now time.Time) model.Task {
	return model.Task{
		Status:   model.TaskStatusTodo,
		Priority: model.TaskPriorityMedium,
		DueDate:  now.AddDate(0, 0, -2),
	}
}

func TestBurnoutRisk(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	t.Run("no signals means zero risk", func(t *testing.T) {
		if got := metrics.BurnoutRisk(nil, nil, now); got != 0 {
			t.Errorf("BurnoutRisk() = %v, want 0", got)
		}
	})

	t.Run("overdue weight capped at 40", func(t *testing.T) {
		var tasks []model.Task
		for i := 0; i < 10; i++ {
			tasks = append(tasks, overdueTask(now))
		}
		if got := metrics.BurnoutRisk(tasks, nil, now); got != 40 {
			t.Errorf("BurnoutRisk() = %v, want 40", got)
		}
	})

	t.Run("high priority backlog capped at 30", func(t *testing.T) {
		var tasks []model.Task
		for i := 0; i < 10; i++ {
			tasks = append(tasks, model.Task{
				Status:   model.TaskStatusInProgress,
				Priority: model.TaskPriorityHigh,
				DueDate:  now.AddDate(0, 0, 5),
			})
		}
		if got := metrics.BurnoutRisk(tasks, nil, now); got != 30 {
			t.Errorf("BurnoutRisk() = %v, want 30", got)
		}
	})

	t.Run("completed overdue tasks do not count", func(t *testing.T) {
		done := now.AddDate(0, 0, -1)
		tasks := []model.Task{{
			Status:      model.TaskStatusCompleted,
			Priority:    model.TaskPriorityHigh,
			DueDate:     now.AddDate(0, 0, -3),
			CompletedAt: tptr(done),
		}}
		if got := metrics.BurnoutRisk(tasks, nil, now); got != 0 {
			t.Errorf("BurnoutRisk() = %v, want 0", got)
		}
	})

	t.Run("volatile focus pattern adds inconsistency weight", func(t *testing.T) {
		// One heavy day inside an otherwise empty week: high CV.
		sessions := []model.FocusSession{sessionOn("2024-05-14", 6*60*60*1000)}
		got := metrics.BurnoutRisk(nil, sessions, now)
		if got != 30 {
			t.Errorf("BurnoutRisk() = %v, want 30 (capped inconsistency)", got)
		}
	})

	t.Run("steady focus pattern adds nothing", func(t *testing.T) {
		var sessions []model.FocusSession
		for d := 9; d <= 15; d++ {
			sessions = append(sessions, sessionOn(time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), 3600000))
		}
		if got := metrics.BurnoutRisk(nil, sessions, now); got != 0 {
			t.Errorf("BurnoutRisk() = %v, want 0", got)
		}
	})

	t.Run("monotone in overdue count and clamped to 100", func(t *testing.T) {
		sessions := []model.FocusSession{sessionOn("2024-05-14", 6*60*60*1000)}
		highPri := model.Task{Status: model.TaskStatusTodo, Priority: model.TaskPriorityHigh, DueDate: now.AddDate(0, 0, 5)}

		prev := float64(-1)
		for n := 0; n <= 8; n++ {
			tasks := []model.Task{highPri, highPri, highPri, highPri}
			for i := 0; i < n; i++ {
				tasks = append(tasks, overdueTask(now))
			}
			got := metrics.BurnoutRisk(tasks, sessions, now)
			if got < prev {
				t.Fatalf("risk decreased from %v to %v at overdue=%d", prev, got, n)
			}
			if got < 0 || got > 100 {
				t.Fatalf("risk %v outside [0,100] at overdue=%d", got, n)
			}
			prev = got
		}
		if prev != 100 {
			t.Errorf("expected saturated risk 100, got %v", prev)
		}
	})
}
