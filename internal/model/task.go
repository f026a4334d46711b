package model

import "time"

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskPriority is the urgency level of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task is a unit of work owned by a user. The analytics service reads
// tasks; creation and mutation happen in the main Integral app.
// CompletedAt is set if and only if Status is completed. Dependencies
// never contains the task's own ID.
type Task struct {
	ID             string
	UserID         string
	Title          string
	Status         TaskStatus
	Priority       TaskPriority
	DueDate        time.Time
	CreatedAt      time.Time
	CompletedAt    *time.Time
	EstimatedHours *float64 // nil when the user gave no estimate
	TimeTakenHours *float64 // nil until tracked time is recorded
	Dependencies   []string // IDs of tasks this task depends on
}

// IsCompleted reports whether the task reached the completed state.
func (t Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// IsOverdue reports whether the task is past due and not completed.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.DueDate.IsZero() && t.DueDate.Before(now) && !t.IsCompleted()
}
