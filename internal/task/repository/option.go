package repository

import "integral-analytics/internal/model"

// ListTasksOptions holds filter parameters for listing tasks.
// All non-zero fields are applied as AND conditions.
type ListTasksOptions struct {
	UserID   string
	Status   model.TaskStatus
	Priority model.TaskPriority
}
