package store

import "context"

// Slot is a single named storage cell holding one opaque payload: the
// JSON-encoded sequence of override issues. It is read whole and written
// whole; the last write wins with no merging of concurrent writers.
type Slot interface {
	// Load returns the current payload, or nil if nothing was ever saved.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the payload in full.
	Save(ctx context.Context, payload []byte) error
}
