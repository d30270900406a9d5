package ordinal

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/ordreg/ordered"
)

// Model is the fully validated generative model:
//
//	βⱼ  ~ Normal(0, CoefScale)                    j = 0..p-1
//	c   ~ <cutpoint-prior strategy>               k-1 ordered cutpoints
//	yᵢ  ~ OrderedLogit(xᵢ·β, c)                   i = 0..n-1
//
// exposed to a sampler as an unnormalized log posterior over the
// unconstrained vector params = β ++ u, where c = ordered.Forward(u).
//
// A Model is immutable after NewModel and safe for concurrent use.
type Model struct {
	numCat  int
	numFeat int
	x       [][]float64
	y       []int
	opts    Options

	coefPrior distuv.Normal // Normal(0, CoefScale) on each β
	basePrior distuv.Normal // Normal(0, 1) on each u (transformed strategy)
	anchor    distuv.Normal // Normal(0, AnchorScale) auxiliary observation
}

// NewModel validates the data and options and builds a Model.
//
// Inputs:
//   - numCategories — number of ordinal outcome levels (≥ 2).
//   - numFeatures   — number of covariates per observation (≥ 1).
//   - X             — design matrix, n rows of length numFeatures. Rows are
//     retained by reference; callers must not mutate them afterwards.
//   - y             — outcomes in [0, numCategories), len(y) == n. n may be
//     zero: the model is then prior-only.
//   - opts          — see Options / DefaultOptions.
//
// Errors:
//   - ErrTooFewCategories  — numCategories < 2.
//   - ErrDimensionMismatch — numFeatures < 1, len(X) != len(y), or a row of
//     the wrong length.
//   - ErrBadCategory       — some y[i] outside the category range.
//   - ErrBadScale          — non-positive CoefScale or AnchorScale.
//   - ErrUnknownPrior      — Prior outside the declared strategies.
func NewModel(numCategories, numFeatures int, X [][]float64, y []int, opts Options) (*Model, error) {
	if numCategories < 2 {
		return nil, ErrTooFewCategories
	}
	if numFeatures < 1 || len(X) != len(y) {
		return nil, ErrDimensionMismatch
	}
	if opts.CoefScale <= 0 || opts.AnchorScale <= 0 {
		return nil, ErrBadScale
	}
	switch opts.Prior {
	case PriorImproper, PriorImproperAnchored, PriorTransformedNormal:
	default:
		return nil, ErrUnknownPrior
	}
	for _, row := range X {
		if len(row) != numFeatures {
			return nil, ErrDimensionMismatch
		}
	}
	for _, yi := range y {
		if yi < 0 || yi >= numCategories {
			return nil, ErrBadCategory
		}
	}

	return &Model{
		numCat:    numCategories,
		numFeat:   numFeatures,
		x:         X,
		y:         y,
		opts:      opts,
		coefPrior: distuv.Normal{Mu: 0, Sigma: opts.CoefScale},
		basePrior: distuv.Normal{Mu: 0, Sigma: 1},
		anchor:    distuv.Normal{Mu: 0, Sigma: opts.AnchorScale},
	}, nil
}

// Dim returns the length of the unconstrained parameter vector:
// numFeatures coefficients followed by numCategories−1 cutpoint coordinates.
func (m *Model) Dim() int { return m.numFeat + m.numCat - 1 }

// NumCategories returns the number of ordinal outcome levels.
func (m *Model) NumCategories() int { return m.numCat }

// NumFeatures returns the number of covariates per observation.
func (m *Model) NumFeatures() int { return m.numFeat }

// NumObs returns the number of observations the likelihood runs over.
func (m *Model) NumObs() int { return len(m.y) }

// Cutpoints maps the cutpoint block of params through the ordered
// transform, returning the strictly increasing thresholds the likelihood
// sees at this point of the chain.
//
// Errors: ErrDimensionMismatch when len(params) != Dim().
func (m *Model) Cutpoints(params []float64) ([]float64, error) {
	if len(params) != m.Dim() {
		return nil, ErrDimensionMismatch
	}

	return ordered.Forward(params[m.numFeat:])
}

// LogDensity evaluates the unnormalized log posterior on the
// unconstrained space:
//
//	Σⱼ log Normal(βⱼ; 0, CoefScale)          coefficient prior
//	+ <strategy term>                        cutpoint prior
//	+ Σᵢ LogPMF(yᵢ, xᵢ·β, c)                 ordered-logit likelihood
//
// where the strategy term is, with c = Forward(u) and J = Σ u[1:]:
//
//	PriorImproper          : J
//	PriorImproperAnchored  : J + log Normal(mean(c); 0, AnchorScale)
//	PriorTransformedNormal : Σᵢ log Normal(uᵢ; 0, 1)   (no J: the base
//	                         density already lives on the unconstrained side)
//
// Pure and deterministic; params is never mutated.
//
// Errors: ErrDimensionMismatch when len(params) != Dim().
//
// Complexity: O(n·p + k) per call.
func (m *Model) LogDensity(params []float64) (float64, error) {
	if len(params) != m.Dim() {
		return 0, ErrDimensionMismatch
	}

	beta := params[:m.numFeat]
	u := params[m.numFeat:]

	// Cutpoint block is non-empty (numCat ≥ 2), so Forward cannot fail.
	cut, err := ordered.Forward(u)
	if err != nil {
		return 0, err
	}

	var lp float64
	for _, b := range beta {
		lp += m.coefPrior.LogProb(b)
	}

	switch m.opts.Prior {
	case PriorImproper:
		j, jerr := ordered.LogAbsDetJacobian(u)
		if jerr != nil {
			return 0, jerr
		}
		lp += j
	case PriorImproperAnchored:
		j, jerr := ordered.LogAbsDetJacobian(u)
		if jerr != nil {
			return 0, jerr
		}
		lp += j
		lp += m.anchor.LogProb(stat.Mean(cut, nil))
	case PriorTransformedNormal:
		for _, ui := range u {
			lp += m.basePrior.LogProb(ui)
		}
	default:
		// unreachable: NewModel rejects unknown strategies
		return 0, ErrUnknownPrior
	}

	for i, row := range m.x {
		eta := floats.Dot(row, beta)
		ll, lerr := LogPMF(m.y[i], eta, cut)
		if lerr != nil {
			return 0, lerr
		}
		lp += ll
	}

	return lp, nil
}
