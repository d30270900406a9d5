// Package ordreg is your deterministic toolbox for Bayesian ordinal
// regression — from the ordered-cutpoint transform to synthetic data and
// posterior summaries.
//
// 🚀 What is ordreg?
//
//	A small, pure-Go library of the building blocks an MCMC engine needs
//	to fit ordinal-outcome models:
//		• Ordered transform: the bijection between unconstrained vectors
//		  and strictly increasing cutpoints, with its log-Jacobian
//		• Model builder: linear predictor → ordered-logit likelihood,
//		  with three interchangeable cutpoint-prior strategies
//		• Simulation: reproducible synthetic ordinal datasets from an
//		  explicitly seeded generator — no global RNG state anywhere
//		• Summaries: per-parameter means, spreads and quantiles over
//		  posterior draws, with a fixed-width report renderer
//
// ✨ Why choose ordreg?
//
//   - Deterministic – same seed ⇒ identical data, byte-identical reports
//   - Sampler-agnostic – models expose a plain unconstrained log-density;
//     any density-based engine (Metropolis, HMC, NUTS) can drive them
//   - Rock-solid guarantees – sentinel errors everywhere, no panics on
//     user input, no hidden goroutines or singletons
//   - Pure functions – every transform and density is safe to call
//     concurrently with independent inputs
//
// Under the hood, everything is organized under four subpackages:
//
//	ordered/  — the unconstrained ⇄ strictly-increasing bijection + Jacobian
//	ordinal/  — generative model: priors, ordered-logit likelihood, log-density
//	simulate/ — synthetic ordinal datasets with threaded RNG state
//	summary/  — descriptive statistics and reports over posterior draws
//
// Quick sketch of the flow:
//
//	simulate ──► ordinal.NewModel ──► your sampler ──► summary
//	                    │
//	                ordered (cutpoint transform, inside LogDensity)
//
// Out of scope by design: the sampler itself, automatic differentiation,
// and any general probabilistic-programming runtime — ordreg owns the
// densities, transforms, data and summaries those engines consume.
//
//	go get github.com/katalvlaran/ordreg
package ordreg
