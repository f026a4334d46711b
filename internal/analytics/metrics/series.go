package metrics

import (
	"time"

	"integral-analytics/internal/model"
	"integral-analytics/pkg/dateutil"
)

// DailyFocusSeries sums session durations into one bucket per calendar
// day over a trailing window of the given length ending at now. Buckets
// are ordered oldest to newest and zero-filled for days with no session.
// Sessions outside the window or with unparseable dates are skipped.
func DailyFocusSeries(sessions []model.FocusSession, days int, now time.Time) []float64 {
	if days <= 0 {
		return nil
	}

	start := dateutil.WindowStart(now, days)
	series := make([]float64, days)
	for _, s := range sessions {
		day, err := dateutil.ParseDay(s.Date)
		if err != nil {
			continue
		}
		idx := dateutil.DaysBetween(start, day)
		if idx < 0 || idx >= days {
			continue
		}
		series[idx] += float64(s.DurationMS)
	}
	return series
}
