package interact_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/featmat/interact"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleOrder2
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Expand a 2×2 feature matrix into its order-2 products and generate the
//	label vector that stays index-aligned with the new columns.
//
// Use case:
//
//	Widening a base feature set before screening it back down.
func ExampleOrder2() {
	X := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	})

	X2, err := interact.Order2(X)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	labels := interact.Order2Labels([]string{"mass", "radius"})

	r, c := X2.Dims()
	fmt.Printf("shape=%dx%d\n", r, c)
	fmt.Printf("labels=%v\n", labels)
	fmt.Printf("row 0=%v\n", []float64{X2.At(0, 0), X2.At(0, 1), X2.At(0, 2)})
	// Output:
	// shape=2x3
	// labels=[mass_x_mass mass_x_radius radius_x_radius]
	// row 0=[1 2 4]
}
