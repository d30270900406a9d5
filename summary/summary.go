package summary

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Quantile levels reported by Summarize. Render derives its column
// headers from these, so changing a level moves the report with it.
const (
	QLow  = 0.05
	QMid  = 0.5
	QHigh = 0.95
)

var (
	// ErrTooFewDraws indicates fewer than two draws; a sample standard
	// deviation needs at least two points.
	ErrTooFewDraws = errors.New("summary: need at least two draws")

	// ErrNoParameters indicates an empty name list.
	ErrNoParameters = errors.New("summary: need at least one parameter name")

	// ErrDimensionMismatch indicates a draw row whose length differs from
	// the number of parameter names.
	ErrDimensionMismatch = errors.New("summary: draw length does not match parameter names")

	// ErrEmptyName indicates a blank parameter name.
	ErrEmptyName = errors.New("summary: parameter name must be non-empty")
)

// Stats holds the descriptive statistics of one parameter's draws.
type Stats struct {
	Mean   float64
	StdDev float64 // sample standard deviation (n−1)
	Q5     float64 // empirical 5% quantile
	Median float64 // empirical 50% quantile
	Q95    float64 // empirical 95% quantile
}

// Table pairs parameter names with their Stats, in input order.
type Table struct {
	Names []string
	Stats []Stats
}

// Summarize reduces draws (iterations × parameters) to per-parameter
// statistics. The draws matrix is read-only: quantiles are taken on a
// sorted scratch copy, one column at a time.
//
// Errors:
//   - ErrTooFewDraws       — fewer than two rows.
//   - ErrNoParameters      — empty names.
//   - ErrEmptyName         — a blank name.
//   - ErrDimensionMismatch — any row length != len(names).
//
// Complexity: O(iterations · parameters · log iterations) time,
// O(iterations) scratch space.
func Summarize(names []string, draws [][]float64) (*Table, error) {
	if len(names) == 0 {
		return nil, ErrNoParameters
	}
	for _, name := range names {
		if name == "" {
			return nil, ErrEmptyName
		}
	}
	if len(draws) < 2 {
		return nil, ErrTooFewDraws
	}
	for _, row := range draws {
		if len(row) != len(names) {
			return nil, ErrDimensionMismatch
		}
	}

	n := len(draws)
	col := make([]float64, n)
	tbl := &Table{
		Names: append([]string(nil), names...),
		Stats: make([]Stats, len(names)),
	}

	for j := range names {
		for i := 0; i < n; i++ {
			col[i] = draws[i][j]
		}
		mean := stat.Mean(col, nil)
		sd := stat.StdDev(col, nil)

		sort.Float64s(col) // col is scratch; the draws stay untouched
		tbl.Stats[j] = Stats{
			Mean:   mean,
			StdDev: sd,
			Q5:     stat.Quantile(QLow, stat.Empirical, col, nil),
			Median: stat.Quantile(QMid, stat.Empirical, col, nil),
			Q95:    stat.Quantile(QHigh, stat.Empirical, col, nil),
		}
	}

	return tbl, nil
}

// Render formats the table as a fixed-width text block:
//
//	parameter          mean        std         5%        50%        95%
//	beta              3.000      1.581      1.000      3.000      5.000
//
// Output is deterministic: identical tables render to identical bytes.
func (t *Table) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %10s %10s %10s %10s %10s\n",
		"parameter", "mean", "std",
		quantileLabel(QLow), quantileLabel(QMid), quantileLabel(QHigh))
	for i, name := range t.Names {
		s := t.Stats[i]
		fmt.Fprintf(&b, "%-12s %10.3f %10.3f %10.3f %10.3f %10.3f\n",
			name, s.Mean, s.StdDev, s.Q5, s.Median, s.Q95)
	}

	return b.String()
}

// quantileLabel renders a quantile level as its percent column header,
// keeping Render bound to the QLow/QMid/QHigh constants.
func quantileLabel(q float64) string {
	return fmt.Sprintf("%.0f%%", 100*q)
}
