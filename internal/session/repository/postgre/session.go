package postgre

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"integral-analytics/internal/model"
	repo "integral-analytics/internal/session/repository"
	"integral-analytics/pkg/dateutil"
)

// CreateSession inserts a new focus session row and returns the created
// entity.
func (r *implRepository) CreateSession(ctx context.Context, opt repo.CreateSessionOptions) (model.FocusSession, error) {
	const query = `
		INSERT INTO focus_sessions (id, user_id, session_date, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, session_date, duration_ms, created_at`

	var (
		s   model.FocusSession
		day time.Time
	)
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.UserID, opt.Date, opt.DurationMS).Scan(
		&s.ID, &s.UserID, &day, &s.DurationMS, &s.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return model.FocusSession{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	s.Date = dateutil.FormatDay(day)
	return s, nil
}

// ListSessions returns a user's sessions within the optional inclusive
// date range, newest first.
func (r *implRepository) ListSessions(ctx context.Context, opt repo.ListSessionsOptions) ([]model.FocusSession, error) {
	where, args := r.buildListQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, user_id, session_date, duration_ms, created_at
		 FROM focus_sessions WHERE %s ORDER BY session_date DESC`,
		where,
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSessions"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	sessions := []model.FocusSession{}
	for rows.Next() {
		var (
			s   model.FocusSession
			day time.Time
		)
		if err := rows.Scan(&s.ID, &s.UserID, &day, &s.DurationMS, &s.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSessions"), err)
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		s.Date = dateutil.FormatDay(day)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return sessions, nil
}
