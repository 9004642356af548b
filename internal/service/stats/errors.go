package stats

import "errors"

var (
	ErrInvalidCourierID = errors.New("invalid courier id")

	// ErrCacheMiss is returned by Cache implementations when no fresh
	// value exists for the courier.
	ErrCacheMiss = errors.New("stats cache miss")
)
