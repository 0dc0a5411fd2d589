package repository

import "errors"

var (
	// ErrNotFound is returned when the targeted identity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a uniqueness constraint is violated.
	ErrConflict = errors.New("conflict")
	// ErrCorrupt is returned when a stored row cannot be turned back into an entity.
	ErrCorrupt = errors.New("corrupt record")
)
