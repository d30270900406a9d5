// Package ordered maps unconstrained real vectors to strictly increasing
// vectors and back, with the log-Jacobian correction a density-based
// sampler needs for the change of variables.
//
// 🚀 What is the ordered transform?
//
//	A bijection between all of Rᵏ and the open set of strictly
//	increasing k-vectors:
//	  Forward:  c₀ = u₀,  cᵢ = cᵢ₋₁ + exp(uᵢ)   (i = 1..k-1)
//	  Inverse:  u₀ = c₀,  uᵢ = log(cᵢ − cᵢ₋₁)
//	It lets an MCMC engine explore unconstrained space while the model
//	always sees validly ordered cutpoints.  Widely used for:
//	  • ordinal-regression cutpoints
//	  • ordered mixture locations
//	  • any parameter with a monotonicity constraint
//
// ✨ Key features:
//   - Forward / Inverse are exact mutual inverses (up to FP rounding)
//   - LogAbsDetJacobian in both parameterizations (from u, or from c)
//   - pure functions, no state, safe for concurrent use
//   - sentinel errors only; never panics on user input
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ordreg/ordered"
//
//	c, err := ordered.Forward([]float64{0, 0, 0}) // → [0, 1, 2]
//	j, err := ordered.LogAbsDetJacobian(u)        // Σ u[1:]
//	u, err := ordered.Inverse(c)                  // round-trips
//
// The change-of-variables rule the Jacobian serves:
//
//	densityU(u) = densityC(Forward(u)) · exp(LogAbsDetJacobian(u))
//
// Performance: every operation is a single O(k) pass, zero allocations
// beyond the result slice.
//
// See example_test.go for worked scenarios.
package ordered
