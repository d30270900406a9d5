// Package ordinal: prior strategies, options and documented defaults.
package ordinal

// CutpointPrior selects how the ordered cutpoint vector is given a prior.
//
//   - PriorImproper          — improper uniform over the ordered set.
//     The unconstrained density carries only the log-Jacobian of the
//     ordered transform. Encodes the constraint, not a magnitude belief.
//
//   - PriorImproperAnchored  — improper uniform plus one auxiliary
//     conditioning statement: the mean cutpoint is observed as 0 under
//     Normal(·, AnchorScale). Removes the location drift the plain
//     improper prior permits.
//
//   - PriorTransformedNormal — proper prior: each unconstrained
//     coordinate uᵢ ~ Normal(0, 1), equivalent to a transformed
//     standard-Normal distribution on the cutpoints themselves.
//
// The three strategies are configurations of one model, differing only
// in the cutpoint-prior term of LogDensity.
type CutpointPrior int

const (
	// PriorImproper: constraint-only improper prior (the zero value).
	PriorImproper CutpointPrior = iota

	// PriorImproperAnchored: improper prior + auxiliary mean-cutpoint anchor.
	PriorImproperAnchored

	// PriorTransformedNormal: proper transformed standard-Normal prior.
	PriorTransformedNormal
)

// String implements fmt.Stringer for diagnostics and test output.
func (p CutpointPrior) String() string {
	switch p {
	case PriorImproper:
		return "improper"
	case PriorImproperAnchored:
		return "improper+anchor"
	case PriorTransformedNormal:
		return "transformed-normal"
	default:
		return "unknown"
	}
}

// Defaults — single source of truth for zero-configuration behavior.
const (
	// DefaultCoefScale is the standard deviation of the Normal prior on
	// every regression coefficient.
	DefaultCoefScale = 1.0

	// DefaultAnchorScale is the standard deviation of the auxiliary
	// mean-cutpoint observation used by PriorImproperAnchored.
	DefaultAnchorScale = 1.0
)

// Options configures a Model.
//
// Fields:
//   - Prior       — cutpoint-prior strategy (see CutpointPrior).
//   - CoefScale   — σ of the Normal(0, σ) prior on coefficients; must be > 0.
//   - AnchorScale — σ of the anchoring observation; must be > 0. Only
//     consulted when Prior == PriorImproperAnchored.
//
// Example:
//
//	opts := ordinal.DefaultOptions()
//	opts.Prior = ordinal.PriorTransformedNormal
//	m, err := ordinal.NewModel(nclasses, nfeat, X, y, opts)
type Options struct {
	Prior       CutpointPrior
	CoefScale   float64
	AnchorScale float64
}

// DefaultOptions returns the documented defaults: the constraint-only
// improper prior with unit scales.
func DefaultOptions() Options {
	return Options{
		Prior:       PriorImproper,
		CoefScale:   DefaultCoefScale,
		AnchorScale: DefaultAnchorScale,
	}
}
