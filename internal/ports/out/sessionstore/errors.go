package sessionstore

import "errors"

var (
	// ErrNotFound indicates no session record is stored.
	ErrNotFound = errors.New("session record not found")

	// ErrCorrupt indicates a stored session record that no longer
	// deserializes. Callers are expected to discard the record and treat the
	// session as absent rather than surfacing this to the user.
	ErrCorrupt = errors.New("session record corrupt")
)
