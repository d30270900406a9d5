package ordered_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ordreg/ordered"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleForward
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A sampler proposes the unconstrained vector u = [0, 0, 0].
//	The model needs strictly increasing cutpoints, so it applies the
//	ordered transform: every exp(0) = 1 increment lands on [0, 1, 2].
//
// Use case:
//
//	Cutpoints for a 4-category ordinal likelihood.
//
// Complexity: O(k) time, O(k) memory.
func ExampleForward() {
	c, _ := ordered.Forward([]float64{0, 0, 0})
	fmt.Println(c)
	// Output: [0 1 2]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleInverse
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Initialization: the modeler picks interpretable starting cutpoints
//	[1, 3, 6] and needs the unconstrained representation the sampler
//	actually works in. The gaps are 2 and 3, so u = [1, log 2, log 3].
func ExampleInverse() {
	u, _ := ordered.Inverse([]float64{1, 3, 6})
	fmt.Printf("%.4f %.4f %.4f\n", u[0], u[1], u[2])
	fmt.Println(u[1] == math.Log(2) && u[2] == math.Log(3))
	// Output:
	// 1.0000 0.6931 1.0986
	// true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleLogAbsDetJacobian
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Change of variables: a density defined over ordered cutpoints must be
//	re-expressed over the sampler's unconstrained space. The correction
//	is simply the sum of u[1:].
func ExampleLogAbsDetJacobian() {
	j, _ := ordered.LogAbsDetJacobian([]float64{0.5, -1.0, 2.0})
	fmt.Println(j)
	// Output: 1
}
