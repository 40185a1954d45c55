package repository

import "errors"

// Sentinel kinds for metrics table errors.
var (
	ErrNotFound = errors.New("group key not found")
)
