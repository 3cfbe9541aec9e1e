package interfaces

import "context"

// ISequenceRepository hands out monotonically increasing numbers for the
// human-readable record keys (SR-001, CHG-001, AST-001, ...).
//
// Next must be atomic: a number, once returned, is never returned again
// for the same sequence name, even under concurrent callers.
type ISequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
