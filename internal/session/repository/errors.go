package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert focus session")
	ErrFailedToList   = errors.New("failed to list focus sessions")
)
