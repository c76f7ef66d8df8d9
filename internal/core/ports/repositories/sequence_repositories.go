package repositories

import "context"

// SequenceRepository hands out monotonically increasing values per named
// scope. Implementations must be safe under concurrent callers; two calls
// for the same scope never return the same value.
type SequenceRepository interface {
	// NextValue atomically increments and returns the counter for scope,
	// starting at 1 for a scope never seen before.
	NextValue(ctx context.Context, scope string) (int64, error)
}
