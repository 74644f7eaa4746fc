package repositories

import "errors"

// Sentinel errors shared by all repositories so services and handlers
// can map store conditions to responses with errors.Is.
var (
	// ErrNotFound is returned when no row matches the lookup, including
	// owner-scoped lookups where the row exists but belongs to someone else.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a write violates a unique
	// constraint (users.email, rooms.room_number).
	ErrDuplicate = errors.New("duplicate entry")
)
