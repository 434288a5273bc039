package errorvalues

import "errors"

var (
	ErrStreakNotFound   = errors.New("no streak record for user")
	ErrLevelNotFound    = errors.New("no level record for user")
	ErrConcurrentUpdate = errors.New("record changed concurrently")
	ErrInvalidAmount    = errors.New("amount must be positive")
)
