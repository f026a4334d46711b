package model

import "time"

// FocusSession is a recorded interval of concentrated work. Dates carry
// day granularity only (ISO YYYY-MM-DD); multiple rows per user per day
// are tolerated and summed by the analytics builders. DurationMS is
// always strictly positive — non-positive durations are discarded at
// creation and never persisted.
type FocusSession struct {
	ID         string
	UserID     string
	Date       string // ISO YYYY-MM-DD
	DurationMS int64
	CreatedAt  time.Time
}
