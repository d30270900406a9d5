// Package ordinal builds the generative model for Bayesian ordinal
// regression: a latent linear predictor scored against ordered cutpoints
// through the ordered-logit likelihood.
//
// 🚀 What does it provide?
//
//	One parameterized model, not three duplicated ones. The model exposes
//	an unnormalized log posterior over a single unconstrained parameter
//	vector — exactly what a density-based MCMC engine (Metropolis, HMC,
//	NUTS) consumes:
//
//	  params = [ β₀ … β_{p-1} | u₀ … u_{k-2} ]
//	             coefficients    unconstrained cutpoints
//
//	The cutpoint block is pushed through ordered.Forward inside
//	LogDensity, so the engine never has to respect the ordering
//	constraint itself.
//
// ✨ Cutpoint-prior strategies (pick one via Options.Prior):
//   - PriorImproper            — improper uniform over ordered vectors;
//     only the change-of-variables Jacobian contributes.
//   - PriorImproperAnchored    — improper uniform plus an auxiliary
//     Normal(0, AnchorScale) conditioning statement on the mean cutpoint,
//     pinning the otherwise drifting location.
//   - PriorTransformedNormal   — proper prior: standard Normal on the
//     unconstrained representation, i.e. a transformed-distribution
//     prior on the ordered cutpoints.
//
// ⚙️ Usage:
//
//	m, err := ordinal.NewModel(4, 1, X, y, ordinal.DefaultOptions())
//	lp, err := m.LogDensity(params) // feed to your sampler
//	c, err := m.Cutpoints(params)   // inspect the ordered thresholds
//
// The likelihood pieces (LogPMF, Probs) are exported on their own for
// simulation and posterior-predictive work.
//
// Everything here is pure and deterministic: no RNG, no globals, no
// logging. Out of scope: the sampler and its gradients.
package ordinal
