package matrix_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcas/expr"
	"github.com/katalvlaran/lvcas/matrix"
)

// ExampleDeterminant computes a determinant and an inverse in place.
func ExampleDeterminant() {
	m := expr.MatrixOf(
		[]*expr.Node{expr.Int(1), expr.Int(2)},
		[]*expr.Node{expr.Int(3), expr.Int(4)},
	)
	d, _ := matrix.Determinant(context.Background(), m)
	fmt.Println("det =", d)

	_ = matrix.Inverse(context.Background(), m)
	fmt.Println("inverse =", m)

	// Output:
	// det = -2
	// inverse = [[-2, 1], [3/2, -1/2]]
}
