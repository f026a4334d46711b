package repository

// CreateSessionOptions holds parameters for inserting a focus session.
// Validation (non-empty user, positive duration) happens in the usecase;
// the repository persists what it is given.
type CreateSessionOptions struct {
	UserID     string
	Date       string // ISO YYYY-MM-DD
	DurationMS int64
}

// ListSessionsOptions holds filter parameters for listing focus sessions.
// StartDate and EndDate are inclusive ISO day bounds; empty means
// unbounded on that side.
type ListSessionsOptions struct {
	UserID    string
	StartDate string
	EndDate   string
}
