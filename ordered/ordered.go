package ordered

import "math"

// Forward — unconstrained → strictly increasing.
//
// Description:
//
//	Maps an unconstrained vector u of length k ≥ 1 onto a strictly
//	increasing vector c of the same length via cumulative positive
//	increments:
//	  c₀ = u₀
//	  cᵢ = cᵢ₋₁ + exp(uᵢ)   for i = 1..k-1
//	For k = 1 the transform degenerates to the identity.
//
// Defined for every real-valued u; there is no failing input besides the
// empty vector. Note that exp(uᵢ) can overflow to +Inf for very large uᵢ;
// within ordinary modeling ranges this does not occur and no special
// handling is applied.
//
// Errors:
//   - ErrEmptyVector — k = 0.
//
// Complexity: O(k) time, O(k) space for the result.
func Forward(u []float64) ([]float64, error) {
	k := len(u)
	if k == 0 {
		return nil, ErrEmptyVector
	}

	c := make([]float64, k)
	c[0] = u[0]
	for i := 1; i < k; i++ {
		c[i] = c[i-1] + math.Exp(u[i])
	}

	return c, nil
}

// Inverse — strictly increasing → unconstrained.
//
// Description:
//
//	Recovers the unconstrained representation of a strictly increasing
//	vector c:
//	  u₀ = c₀
//	  uᵢ = log(cᵢ − cᵢ₋₁)   for i = 1..k-1
//	Inverse(Forward(u)) == u up to floating-point rounding.
//
// The gap cᵢ − cᵢ₋₁ must be positive for every i; log of a shrinking gap
// tends to −Inf, so callers must not feed already-violated orderings here.
//
// Errors:
//   - ErrEmptyVector  — k = 0.
//   - ErrNotAscending — any cᵢ ≤ cᵢ₋₁, or a NaN gap.
//
// Complexity: O(k) time, O(k) space for the result.
func Inverse(c []float64) ([]float64, error) {
	k := len(c)
	if k == 0 {
		return nil, ErrEmptyVector
	}

	u := make([]float64, k)
	u[0] = c[0]
	for i := 1; i < k; i++ {
		gap := c[i] - c[i-1]
		// !(gap > 0) also rejects NaN gaps, which "gap <= 0" would let through.
		if !(gap > 0) {
			return nil, ErrNotAscending
		}
		u[i] = math.Log(gap)
	}

	return u, nil
}

// LogAbsDetJacobian returns the log-absolute-determinant of the Jacobian
// of Forward at u: the Jacobian is lower-triangular with diagonal
// (1, exp(u₁), …, exp(u_{k-1})), so the result is simply Σ u[1:].
// For k = 1 the sum is empty and the result is 0.
//
// This is the correction term of the change-of-variables formula:
//
//	densityU(u) = densityC(Forward(u)) · exp(LogAbsDetJacobian(u))
//
// Errors:
//   - ErrEmptyVector — k = 0.
//
// Complexity: O(k) time, O(1) space.
func LogAbsDetJacobian(u []float64) (float64, error) {
	if len(u) == 0 {
		return 0, ErrEmptyVector
	}

	var sum float64
	for i := 1; i < len(u); i++ {
		sum += u[i]
	}

	return sum, nil
}

// LogAbsDetJacobianFromOrdered computes the same quantity as
// LogAbsDetJacobian, but from the constrained side: Σ log(cᵢ − cᵢ₋₁).
// Useful for callers that hold only the ordered vector.
//
// Errors:
//   - ErrEmptyVector  — k = 0.
//   - ErrNotAscending — any cᵢ ≤ cᵢ₋₁, or a NaN gap.
//
// Complexity: O(k) time, O(1) space.
func LogAbsDetJacobianFromOrdered(c []float64) (float64, error) {
	if len(c) == 0 {
		return 0, ErrEmptyVector
	}

	var sum float64
	for i := 1; i < len(c); i++ {
		gap := c[i] - c[i-1]
		if !(gap > 0) {
			return 0, ErrNotAscending
		}
		sum += math.Log(gap)
	}

	return sum, nil
}

// IsStrictlyIncreasing reports whether c is strictly increasing.
// An empty or single-element vector is trivially increasing, except that
// NaN anywhere makes the answer false.
func IsStrictlyIncreasing(c []float64) bool {
	for i := range c {
		if math.IsNaN(c[i]) {
			return false
		}
		if i > 0 && c[i] <= c[i-1] {
			return false
		}
	}

	return true
}
