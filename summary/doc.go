// Package summary condenses a matrix of posterior draws into the
// per-parameter descriptive statistics a modeler actually reads:
// mean, spread, and central quantiles — plus a fixed-width report.
//
// 🚀 What does it do?
//
//	Given draws (iterations × parameters) from any MCMC engine and a name
//	per parameter, Summarize produces a Table of
//	  mean · std · 5% · 50% · 95%
//	per parameter, and Render turns it into the kind of deterministic,
//	byte-stable text block that diffable reports and golden tests love.
//
// ✨ Guarantees:
//   - draws are never mutated (quantiles work on a sorted copy)
//   - deterministic output: same draws ⇒ identical bytes from Render
//   - sentinel errors for every shape violation, no panics
//
// ⚙️ Usage:
//
//	tbl, err := summary.Summarize([]string{"beta", "c[0]", "c[1]"}, draws)
//	fmt.Print(tbl.Render())
//
// Statistics come from gonum/stat: Mean, sample StdDev, and the
// empirical quantile on sorted draws.
//
// Convergence diagnostics (R-hat, effective sample size) belong to the
// inference engine, not here.
package summary
