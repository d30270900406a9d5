// Package ordinal: the ordered-logit likelihood kernel.
//
// The category probability of outcome j under latent score eta and
// cutpoints c₀ < … < c_{k-2} is a difference of logistic CDFs:
//
//	P(Y = 0)   = F(c₀ − eta)
//	P(Y = j)   = F(c_j − eta) − F(c_{j-1} − eta)   (0 < j < k-1)
//	P(Y = k-1) = 1 − F(c_{k-2} − eta)
//
// with F the standard logistic CDF. Log-space evaluation goes through
// logSigmoid/logDiffExp to stay finite when a category is squeezed into
// the tail of the link.
package ordinal

import (
	"math"

	"github.com/katalvlaran/ordreg/ordered"
)

// logSigmoid returns log F(x) for the logistic CDF F without overflow on
// either tail: -softplus(-x), branched on the sign of x.
func logSigmoid(x float64) float64 {
	if x < 0 {
		return x - math.Log1p(math.Exp(x))
	}

	return -math.Log1p(math.Exp(-x))
}

// sigmoid returns F(x) = 1/(1+exp(−x)), evaluated via the numerically
// favorable branch for each sign.
func sigmoid(x float64) float64 {
	if x < 0 {
		e := math.Exp(x)
		return e / (1 + e)
	}

	return 1 / (1 + math.Exp(-x))
}

// logDiffExp returns log(exp(a) − exp(b)) for a > b.
// When the gap collapses (b ≥ a up to rounding) the result is −Inf,
// which is the correct log-probability of an empty category band.
func logDiffExp(a, b float64) float64 {
	if b >= a {
		return math.Inf(-1)
	}

	return a + math.Log1p(-math.Exp(b-a))
}

// LogPMF returns the log-probability of an ordinal outcome under the
// ordered-logit likelihood with latent score eta and strictly increasing
// cutpoints. Categories are 0-based: k = len(cutpoints)+1 of them.
//
// Errors:
//   - ErrTooFewCategories     — no cutpoints at all.
//   - ErrBadCategory          — category outside [0, k).
//   - ordered.ErrNotAscending — cutpoints not strictly increasing.
//
// Complexity: O(k) (the ordering check dominates; the kernel itself is O(1)).
func LogPMF(category int, eta float64, cutpoints []float64) (float64, error) {
	k := len(cutpoints) + 1
	if k < 2 {
		return 0, ErrTooFewCategories
	}
	if category < 0 || category >= k {
		return 0, ErrBadCategory
	}
	if !ordered.IsStrictlyIncreasing(cutpoints) {
		return 0, ordered.ErrNotAscending
	}

	switch {
	case category == 0:
		return logSigmoid(cutpoints[0] - eta), nil
	case category == k-1:
		// 1 − F(x) = F(−x) for the logistic CDF.
		return logSigmoid(eta - cutpoints[k-2]), nil
	default:
		hi := logSigmoid(cutpoints[category] - eta)
		lo := logSigmoid(cutpoints[category-1] - eta)

		return logDiffExp(hi, lo), nil
	}
}

// Probs returns the full category distribution under the ordered-logit
// likelihood: a length-(len(cutpoints)+1) vector summing to 1.
//
// Errors:
//   - ErrTooFewCategories     — no cutpoints at all.
//   - ordered.ErrNotAscending — cutpoints not strictly increasing.
//
// Complexity: O(k) time, O(k) space for the result.
func Probs(eta float64, cutpoints []float64) ([]float64, error) {
	k := len(cutpoints) + 1
	if k < 2 {
		return nil, ErrTooFewCategories
	}
	if !ordered.IsStrictlyIncreasing(cutpoints) {
		return nil, ordered.ErrNotAscending
	}

	probs := make([]float64, k)
	prev := 0.0
	for j := 0; j < k-1; j++ {
		cdf := sigmoid(cutpoints[j] - eta)
		probs[j] = cdf - prev
		prev = cdf
	}
	probs[k-1] = 1 - prev

	return probs, nil
}
