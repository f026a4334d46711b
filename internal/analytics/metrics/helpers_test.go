package metrics_test

import (
	"time"

	"integral-analytics/internal/model"
)

func fptr(v float64) *float64 { return &v }

func tptr(t time.Time) *time.Time { return &t }

func completedTask(completedAt time.Time, estimated, taken *float64) model.Task {
	return model.Task{
		Status:         model.TaskStatusCompleted,
		Priority:       model.TaskPriorityMedium,
		CompletedAt:    tptr(completedAt),
		EstimatedHours: estimated,
		TimeTakenHours: taken,
	}
}

func sessionOn(date string, durationMS int64) model.FocusSession {
	return model.FocusSession{UserID: "u1", Date: date, DurationMS: durationMS}
}
