package app

import "errors"

var (
	// ErrCountTooSmall is returned if --count is smaller than 1.
	ErrCountTooSmall = errors.New("count must be at least 1")
)
