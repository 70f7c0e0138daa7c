// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcas/expr"
	"github.com/katalvlaran/lvcas/matrix"
)

// TestInverse_Numeric checks the 2×2 scenario and Inverse·M = I on a 3×3.
func TestInverse_Numeric(t *testing.T) {
	ctx := context.Background()

	m := ints([]int64{1, 2}, []int64{3, 4})
	require.NoError(t, matrix.Inverse(ctx, m))
	assert.Equal(t, "[[-2, 1], [3/2, -1/2]]", m.String())

	for _, opts := range [][]matrix.Option{nil, {matrix.WithPivoting(false)}} {
		orig := ints([]int64{0, 1, 2}, []int64{1, 0, 3}, []int64{4, -3, 8})
		inv := orig.Clone()
		require.NoError(t, matrix.Inverse(ctx, inv, opts...))
		p, err := matrix.Mul(inv, orig)
		require.NoError(t, err)
		id, _ := matrix.Identity(3)
		assert.True(t, p.Equals(id, false, false), "got %s", p)
	}
}

// TestInverse_Singular expects ErrSingular, an unchanged input and a warning.
func TestInverse_Singular(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	m := ints([]int64{1, 2}, []int64{2, 4})
	err := matrix.Inverse(ctx, m)
	require.ErrorIs(t, err, matrix.ErrSingular)
	assert.Equal(t, "[[1, 2], [2, 4]]", m.String())
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "singular")

	a := expr.NewUnknown("a", expr.Assumptions{})
	s := expr.MatrixOf(
		[]*expr.Node{expr.Var(a), expr.Var(a)},
		[]*expr.Node{expr.Var(a), expr.Var(a)},
	)
	require.ErrorIs(t, matrix.Inverse(ctx, s), matrix.ErrSingular)
	assert.Equal(t, expr.KindVariable, s.Child(0).Child(0).Kind())
}

// TestInverse_Symbolic falls back to adjoint over determinant.
func TestInverse_Symbolic(t *testing.T) {
	ctx := context.Background()
	a := expr.NewUnknown("a", expr.Assumptions{Sign: expr.SignPositive})
	m := expr.MatrixOf(
		[]*expr.Node{expr.Var(a), expr.Int(0)},
		[]*expr.Node{expr.Int(0), expr.Int(2)},
	)
	require.NoError(t, matrix.Inverse(ctx, m))

	e00, _ := matrix.At(m, 0, 0)
	assert.True(t, e00.Equals(expr.Pow(expr.Var(a), expr.Int(-1)), false, false), "got %s", m)
	e11, _ := matrix.At(m, 1, 1)
	assert.True(t, e11.Equals(expr.Frac(1, 2), false, false), "got %s", m)
	e01, _ := matrix.At(m, 0, 1)
	assert.True(t, e01.IsZero())
}

// TestInverse_Errors covers shape validation and cancellation.
func TestInverse_Errors(t *testing.T) {
	m := ints([]int64{1, 2, 3})
	require.ErrorIs(t, matrix.Inverse(context.Background(), m), matrix.ErrNonSquare)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sq := ints([]int64{1, 2}, []int64{3, 4})
	require.ErrorIs(t, matrix.Inverse(ctx, sq), context.Canceled)
	assert.Equal(t, "[[1, 2], [3, 4]]", sq.String())
}

// TestRank covers numeric and symbolic rank.
func TestRank(t *testing.T) {
	ctx := context.Background()
	r, err := matrix.Rank(ctx, ints([]int64{1, 2}, []int64{2, 4}))
	require.NoError(t, err)
	assert.Equal(t, 1, r)

	id, _ := matrix.Identity(3)
	r, err = matrix.Rank(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, r)

	pos := expr.NewUnknown("p", expr.Assumptions{Sign: expr.SignPositive})
	m := expr.MatrixOf(
		[]*expr.Node{expr.Var(pos), expr.Int(1)},
		[]*expr.Node{expr.Int(0), expr.Int(1)},
	)
	r, err = matrix.Rank(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, 2, r)
}

// TestGaussianElimination_Symbolic eliminates below a provably non-zero pivot.
func TestGaussianElimination_Symbolic(t *testing.T) {
	ctx := context.Background()
	p := expr.NewUnknown("p", expr.Assumptions{Sign: expr.SignPositive})
	m := expr.MatrixOf(
		[]*expr.Node{expr.Var(p), expr.Int(1)},
		[]*expr.Node{expr.Product(expr.Int(2), expr.Var(p)), expr.Int(3)},
	)
	require.NoError(t, matrix.GaussianElimination(ctx, m))
	assert.Equal(t, "[[p, 1], [0, 1]]", m.String())
}
