package repository

import "errors"

// Sentinel kinds for snapshot store errors.
var (
	ErrNotFound        = errors.New("snapshot not found")
	ErrCapacity        = errors.New("snapshot store is full")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)
