package metrics

import (
	"sort"
	"time"

	"integral-analytics/internal/model"
	"integral-analytics/pkg/dateutil"
)

// Streaks holds consecutive-day focus runs. Current counts only when the
// most recent session is today or yesterday; Longest scans the whole
// history irrespective of recency.
type Streaks struct {
	Current int
	Longest int
}

// SessionStreaks computes current and longest consecutive-day streaks
// from focus sessions. Multiple sessions on the same day count once.
func SessionStreaks(sessions []model.FocusSession, now time.Time) Streaks {
	days := uniqueSortedDays(sessions)
	if len(days) == 0 {
		return Streaks{}
	}

	var s Streaks

	// Longest run over the full history.
	run := 1
	for i := 1; i < len(days); i++ {
		if dateutil.DaysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > s.Longest {
			s.Longest = run
		}
	}
	if s.Longest == 0 {
		s.Longest = 1
	}

	// Current run, anchored to today or yesterday.
	last := days[len(days)-1]
	gap := dateutil.DaysBetween(last, dateutil.StartOfDay(now))
	if gap > 1 || gap < 0 {
		return s
	}
	s.Current = 1
	for i := len(days) - 1; i > 0; i-- {
		if dateutil.DaysBetween(days[i-1], days[i]) != 1 {
			break
		}
		s.Current++
	}
	return s
}

// uniqueSortedDays returns the distinct session days in ascending order,
// skipping unparseable dates.
func uniqueSortedDays(sessions []model.FocusSession) []time.Time {
	seen := make(map[string]struct{}, len(sessions))
	days := make([]time.Time, 0, len(sessions))
	for _, s := range sessions {
		if _, ok := seen[s.Date]; ok {
			continue
		}
		day, err := dateutil.ParseDay(s.Date)
		if err != nil {
			continue
		}
		seen[s.Date] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
