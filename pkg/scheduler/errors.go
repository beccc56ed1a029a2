package scheduler

import "errors"

var (
	// ErrConfiguration reports invalid run parameters (year, month, pay period, options).
	ErrConfiguration = errors.New("configuration error")
	// ErrData reports seasonal, holiday or roster data the scheduler cannot use.
	ErrData = errors.New("data error")
	// ErrNotFound reports an unknown day, shift or mentor in a reassignment.
	ErrNotFound = errors.New("not found")
)
