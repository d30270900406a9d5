// Package simulate generates reproducible synthetic ordinal datasets:
// standard-Normal covariates scored by a known coefficient vector and
// discretized through known cutpoints via the ordered-logit likelihood.
//
// 🚀 Why simulate?
//
//	Every inference pipeline should first be run against data whose
//	generating truth is known.  A dataset built here carries its own
//	Beta and Cutpoints, so posterior summaries can be compared against
//	the values that actually produced the outcomes.
//
// ✨ Determinism policy (shared across ordreg):
//   - all randomness flows from one explicit Source built from Config.Seed
//   - Seed == 0 falls back to a fixed, documented default seed
//   - no package-level generator, no time-based seeding, ever
//   - same Config ⇒ byte-identical Dataset, on every platform
//
// ⚙️ Usage:
//
//	ds, err := simulate.New(simulate.Config{
//	  NumObs:    500,
//	  Beta:      []float64{1.5},
//	  Cutpoints: []float64{-1, 0, 1.5},
//	  Seed:      7,
//	})
//	m, err := ordinal.NewModel(len(ds.Cutpoints)+1, len(ds.Beta), ds.X, ds.Y, opts)
//
// Distributional machinery comes from gonum's distuv over an
// explicitly threaded x/exp/rand source.
package simulate
