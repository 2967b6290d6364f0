package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Callers map
// them to HTTP statuses with errors.Is instead of matching error strings.
var (
	// ErrNotFound means no record exists at the given identifier.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique constraint (usually the slug index)
	// rejected the write.
	ErrDuplicate = errors.New("duplicate record")
)
