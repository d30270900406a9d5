package ordinal

import "errors"

var (
	// ErrTooFewCategories indicates fewer than two outcome categories; an
	// ordinal likelihood needs at least one cutpoint.
	ErrTooFewCategories = errors.New("ordinal: need at least two outcome categories")

	// ErrDimensionMismatch indicates disagreeing shapes: design-matrix rows
	// vs outcomes, row length vs feature count, or a parameter vector whose
	// length differs from Model.Dim().
	ErrDimensionMismatch = errors.New("ordinal: dimension mismatch")

	// ErrBadCategory indicates an outcome outside [0, numCategories).
	ErrBadCategory = errors.New("ordinal: outcome outside category range")

	// ErrBadScale indicates a non-positive prior scale in Options.
	ErrBadScale = errors.New("ordinal: prior scale must be positive")

	// ErrUnknownPrior indicates a CutpointPrior value outside the declared set.
	ErrUnknownPrior = errors.New("ordinal: unknown cutpoint prior strategy")
)
