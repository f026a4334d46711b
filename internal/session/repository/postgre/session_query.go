package postgre

import (
	"fmt"
	"strings"

	repo "integral-analytics/internal/session/repository"
)

// buildListQuery builds WHERE clause + args for ListSessions.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildListQuery(opt repo.ListSessionsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("session_date >= $%d", idx))
		args = append(args, opt.StartDate)
		idx++
	}
	if opt.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("session_date <= $%d", idx))
		args = append(args, opt.EndDate)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
