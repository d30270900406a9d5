package ordinal_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ordreg/ordinal"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewModel
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 4-category outcome with one covariate and, so far, no data: a
//	prior-only model. The unconstrained vector a sampler would explore is
//	[β | u₀ u₁ u₂]; the cutpoint block is pushed through the ordered
//	transform whenever the model needs thresholds.
//
// Use case:
//
//	Prior-predictive checks before any observation arrives.
func ExampleNewModel() {
	m, _ := ordinal.NewModel(4, 1, nil, nil, ordinal.DefaultOptions())

	params := []float64{0.3, 0, 0, 0} // β = 0.3, u = [0,0,0]
	cut, _ := m.Cutpoints(params)

	fmt.Println("dim:", m.Dim())
	fmt.Println("cutpoints:", cut)
	// Output:
	// dim: 4
	// cutpoints: [0 1 2]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleModel_LogDensity
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two observations, three categories, one covariate. The density-based
//	sampler only ever needs this one number per proposed point — and the
//	proper transformed-Normal prior keeps it finite everywhere.
func ExampleModel_LogDensity() {
	X := [][]float64{{1.0}, {-1.0}}
	y := []int{2, 0}

	opts := ordinal.DefaultOptions()
	opts.Prior = ordinal.PriorTransformedNormal

	m, _ := ordinal.NewModel(3, 1, X, y, opts)

	atZero, _ := m.LogDensity([]float64{0, -0.5, 0.5})
	farOut, _ := m.LogDensity([]float64{40, -0.5, 0.5})

	fmt.Println("finite at zero:", !math.IsInf(atZero, 0))
	fmt.Println("prior penalizes absurd coefficients:", farOut < atZero)
	// Output:
	// finite at zero: true
	// prior penalizes absurd coefficients: true
}
