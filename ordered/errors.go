package ordered

import "errors"

var (
	// ErrEmptyVector indicates a zero-length input; the transform is defined
	// only for k ≥ 1.
	ErrEmptyVector = errors.New("ordered: vector must have at least one element")

	// ErrNotAscending indicates an input that was required to be strictly
	// increasing but is not (a gap ≤ 0, or a NaN breaking comparability).
	// Well-formed callers never produce such input: treat this as an
	// integration bug, not a recoverable runtime event.
	ErrNotAscending = errors.New("ordered: vector is not strictly increasing")
)
