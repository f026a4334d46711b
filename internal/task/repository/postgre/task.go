package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"integral-analytics/internal/model"
	repo "integral-analytics/internal/task/repository"
)

// ListTasks returns all tasks matching the options, newest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	where, args := r.buildListQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, user_id, title, status, priority, due_date, created_at,
		        completed_at, estimated_hours, time_taken_hours, dependencies
		 FROM tasks WHERE %s ORDER BY created_at DESC`,
		where,
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return tasks, nil
}

func scanTask(rows *sql.Rows) (model.Task, error) {
	var (
		t           model.Task
		dueDate     sql.NullTime
		completedAt sql.NullTime
		estimated   sql.NullFloat64
		timeTaken   sql.NullFloat64
		deps        pq.StringArray
	)
	err := rows.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Status, &t.Priority, &dueDate,
		&t.CreatedAt, &completedAt, &estimated, &timeTaken, &deps,
	)
	if err != nil {
		return model.Task{}, err
	}

	if dueDate.Valid {
		t.DueDate = dueDate.Time
	}
	if completedAt.Valid {
		t.CompletedAt = &completedAt.Time
	}
	if estimated.Valid {
		t.EstimatedHours = &estimated.Float64
	}
	if timeTaken.Valid {
		t.TimeTakenHours = &timeTaken.Float64
	}
	t.Dependencies = []string(deps)
	return t, nil
}
