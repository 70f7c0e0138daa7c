// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcas/expr"
	"github.com/katalvlaran/lvcas/matrix"
)

// ints builds a matrix tree from integer rows.
func ints(rows ...[]int64) *expr.Node {
	rs := make([][]*expr.Node, len(rows))
	for i, r := range rows {
		rs[i] = make([]*expr.Node, len(r))
		for j, v := range r {
			rs[i][j] = expr.Int(v)
		}
	}
	return expr.MatrixOf(rs...)
}

// TestIsMatrix checks the shape predicate on valid and ragged trees.
func TestIsMatrix(t *testing.T) {
	assert.True(t, matrix.IsMatrix(ints([]int64{1, 2}, []int64{3, 4})))
	assert.True(t, matrix.IsSquare(ints([]int64{1, 2}, []int64{3, 4})))
	assert.False(t, matrix.IsSquare(ints([]int64{1, 2})))
	assert.False(t, matrix.IsMatrix(expr.Vector(expr.Int(1), expr.Int(2))))
	assert.False(t, matrix.IsMatrix(ints([]int64{1, 2}, []int64{3})))
	assert.False(t, matrix.IsMatrix(expr.Vector()))
	assert.False(t, matrix.IsMatrix(expr.Int(1)))
	assert.False(t, matrix.IsMatrix(nil))
}

// TestNewIdentityAt verifies constructors and the bounds-checked accessor.
func TestNewIdentityAt(t *testing.T) {
	z, err := matrix.New(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, matrix.Rows(z))
	assert.Equal(t, 3, matrix.Cols(z))
	assert.Equal(t, "[[0, 0, 0], [0, 0, 0]]", z.String())

	id, err := matrix.Identity(3)
	require.NoError(t, err)
	assert.Equal(t, "[[1, 0, 0], [0, 1, 0], [0, 0, 1]]", id.String())

	e, err := matrix.At(id, 1, 1)
	require.NoError(t, err)
	assert.True(t, e.IsOne())

	_, err = matrix.At(id, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.At(id, 0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.New(0, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Identity(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAddMulTransposeScale covers the elementwise and product kernels.
func TestAddMulTransposeScale(t *testing.T) {
	a := ints([]int64{1, 2}, []int64{3, 4})
	b := ints([]int64{0, 1}, []int64{1, 0})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, "[[1, 3], [4, 4]]", sum.String())

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, "[[2, 1], [4, 3]]", prod.String())

	tr, err := matrix.Transpose(ints([]int64{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, "[[1], [2], [3]]", tr.String())

	sc, err := matrix.Scale(a, expr.Frac(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "[[1/2, 1], [3/2, 2]]", sc.String())

	// inputs are only read
	assert.Equal(t, "[[1, 2], [3, 4]]", a.String())

	_, err = matrix.Add(a, ints([]int64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(a, ints([]int64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Transpose(expr.Int(3))
	require.ErrorIs(t, err, matrix.ErrNotMatrix)
}

// TestMulSymbolic keeps symbolic entries and merges like terms.
func TestMulSymbolic(t *testing.T) {
	x := expr.NewUnknown("x", expr.Assumptions{})
	a := expr.MatrixOf([]*expr.Node{expr.Var(x), expr.Int(1)})
	b := expr.MatrixOf([]*expr.Node{expr.Var(x)}, []*expr.Node{expr.Var(x)})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	want := expr.Sum(expr.Pow(expr.Var(x), expr.Int(2)), expr.Var(x))
	assert.True(t, p.Child(0).Child(0).Equals(want, false, false), "got %s", p)
}
