package repository

import (
	"context"

	"integral-analytics/internal/model"
)

// Repository is the read-only task store the analytics engine consumes.
// Tasks are created and mutated by the main Integral app; this service
// only lists them.
type Repository interface {
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}
