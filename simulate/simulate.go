package simulate

import (
	"errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/ordreg/ordered"
	"github.com/katalvlaran/ordreg/ordinal"
)

// DefaultSeed is the fixed seed used when Config.Seed == 0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed uint64 = 1

var (
	// ErrNoObservations indicates NumObs < 1.
	ErrNoObservations = errors.New("simulate: NumObs must be at least one")

	// ErrNoFeatures indicates an empty Beta vector.
	ErrNoFeatures = errors.New("simulate: Beta must have at least one coefficient")

	// ErrNoCutpoints indicates an empty Cutpoints vector.
	ErrNoCutpoints = errors.New("simulate: Cutpoints must have at least one threshold")
)

// Config describes the generating truth of a synthetic dataset.
//
// Fields:
//   - NumObs    — number of observations to draw (≥ 1).
//   - Beta      — true regression coefficients; its length fixes the
//     number of covariates.
//   - Cutpoints — true strictly increasing thresholds; their count fixes
//     the number of outcome categories (len+1).
//   - Seed      — RNG seed; 0 selects DefaultSeed.
type Config struct {
	NumObs    int
	Beta      []float64
	Cutpoints []float64
	Seed      uint64
}

// Dataset is a drawn sample together with the truth that generated it.
// X and Y are freshly allocated; Beta and Cutpoints are copies of the
// Config values, safe to mutate independently.
type Dataset struct {
	X [][]float64
	Y []int

	Beta      []float64
	Cutpoints []float64
}

// New draws a synthetic ordinal dataset from cfg.
//
// Generative process, per observation i:
//
//	xᵢⱼ ~ Normal(0, 1)                       iid covariates
//	etaᵢ = xᵢ · Beta                         latent score
//	Yᵢ   ~ Categorical(Probs(etaᵢ, Cutpoints))   ordered-logit outcome
//
// All randomness comes from a single source seeded by cfg.Seed; the same
// Config always yields the identical Dataset.
//
// Errors:
//   - ErrNoObservations / ErrNoFeatures / ErrNoCutpoints — shape checks.
//   - ordered.ErrNotAscending — Cutpoints not strictly increasing.
//
// Complexity: O(NumObs · (len(Beta) + len(Cutpoints))).
func New(cfg Config) (*Dataset, error) {
	if cfg.NumObs < 1 {
		return nil, ErrNoObservations
	}
	if len(cfg.Beta) == 0 {
		return nil, ErrNoFeatures
	}
	if len(cfg.Cutpoints) == 0 {
		return nil, ErrNoCutpoints
	}
	if !ordered.IsStrictlyIncreasing(cfg.Cutpoints) {
		return nil, ordered.ErrNotAscending
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	src := rand.NewSource(seed)
	rng := rand.New(src)
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	p := len(cfg.Beta)
	ds := &Dataset{
		X:         make([][]float64, cfg.NumObs),
		Y:         make([]int, cfg.NumObs),
		Beta:      append([]float64(nil), cfg.Beta...),
		Cutpoints: append([]float64(nil), cfg.Cutpoints...),
	}

	for i := 0; i < cfg.NumObs; i++ {
		row := make([]float64, p)
		for j := range row {
			row[j] = norm.Rand()
		}
		ds.X[i] = row

		eta := floats.Dot(row, cfg.Beta)
		probs, err := ordinal.Probs(eta, cfg.Cutpoints)
		if err != nil {
			return nil, err
		}
		ds.Y[i] = drawCategory(probs, rng.Float64())
	}

	return ds, nil
}

// NumCategories returns the number of outcome levels the dataset encodes.
func (d *Dataset) NumCategories() int { return len(d.Cutpoints) + 1 }

// Counts tallies outcomes per category. Always length NumCategories().
func (d *Dataset) Counts() []int {
	counts := make([]int, d.NumCategories())
	for _, yi := range d.Y {
		counts[yi]++
	}

	return counts
}

// drawCategory converts a uniform draw v ∈ [0,1) into a category index by
// walking the cumulative distribution. Rounding residue at the top end
// falls into the last category.
func drawCategory(probs []float64, v float64) int {
	var cum float64
	for j, pj := range probs {
		cum += pj
		if v < cum {
			return j
		}
	}

	return len(probs) - 1
}
