package analytics

import "errors"

// Domain-specific errors for the analytics package.
var (
	ErrMissingUserID    = errors.New("user id is required")
	ErrInvalidDate      = errors.New("date must be ISO YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)
