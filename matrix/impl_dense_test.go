// Package matrix_test contains unit tests for the Dense numeric workspace.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcas/expr"
	"github.com/katalvlaran/lvcas/matrix"
	"github.com/katalvlaran/lvcas/number"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDenseAtSet validates bounds checks and Set followed by At.
func TestDenseAtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, number.New(1)), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 2, number.NewFrac(7, 3)))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, "7/3", v.String())

	require.Equal(t, "[0, 0, 0]\n[0, 0, 7/3]\n", m.String())
}

// TestDenseOfRoundTrip converts a numeric tree to Dense and back.
func TestDenseOfRoundTrip(t *testing.T) {
	src := ints([]int64{1, 2}, []int64{3, 4})
	d, ok := matrix.DenseOf(src)
	require.True(t, ok)

	c := d.Clone()
	require.NoError(t, c.Set(0, 0, number.New(9)))
	v, _ := d.At(0, 0)
	require.True(t, v.IsOne(), "clone must not alias")

	require.True(t, d.Node().Equals(src, false, false))

	x := expr.NewUnknown("x", expr.Assumptions{})
	_, ok = matrix.DenseOf(expr.MatrixOf([]*expr.Node{expr.Var(x)}))
	require.False(t, ok)
}
