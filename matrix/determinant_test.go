// SPDX-License-Identifier: MIT
package matrix_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcas/expr"
	"github.com/katalvlaran/lvcas/matrix"
)

var numeric4 = [][]int64{{1, 2, 3, 4}, {5, 6, 7, 8}, {2, 6, 4, 8}, {3, 1, 1, 2}}

// symbolic4 is a 4×4 matrix with a at (0,0); its first column holds the most
// zeros, so the expansion reorders columns with an odd permutation.
func symbolic4(a *expr.Variable) *expr.Node {
	i := expr.Int
	return expr.MatrixOf(
		[]*expr.Node{expr.Var(a), i(1), i(2), i(0)},
		[]*expr.Node{i(0), i(3), i(1), i(2)},
		[]*expr.Node{i(0), i(1), i(0), i(4)},
		[]*expr.Node{i(5), i(2), i(3), i(1)},
	)
}

// valueWith substitutes v for a in a clone of n and evaluates it.
func valueWith(t *testing.T, n *expr.Node, a *expr.Variable, v int64) string {
	t.Helper()
	c := n.Clone()
	c.Replace(expr.Var(a), expr.Int(v))
	out, err := c.Evaluate(context.Background())
	require.NoError(t, err)
	return out.String()
}

// TestDeterminant_Numeric covers the closed forms and the elimination path.
func TestDeterminant_Numeric(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		m    *expr.Node
		want string
	}{
		{"1x1", ints([]int64{7}), "7"},
		{"2x2", ints([]int64{1, 2}, []int64{3, 4}), "-2"},
		{"3x3", ints([]int64{2, 0, 1}, []int64{1, 3, 2}, []int64{1, 1, 2}), "6"},
		{"4x4", ints(numeric4...), "72"},
		{"singular 4x4", ints([]int64{1, 2, 3, 4}, []int64{2, 4, 6, 8}, []int64{0, 1, 0, 1}, []int64{1, 0, 0, 1}), "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.Determinant(ctx, tc.m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.String())

			d, err = matrix.Determinant(ctx, tc.m, matrix.WithPivoting(false))
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.String())
		})
	}
}

// TestDeterminant_TransposeInvariance checks det(Mᵀ) = det(M).
func TestDeterminant_TransposeInvariance(t *testing.T) {
	ctx := context.Background()
	m := ints(numeric4...)
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)

	d1, err := matrix.Determinant(ctx, m)
	require.NoError(t, err)
	d2, err := matrix.Determinant(ctx, tr)
	require.NoError(t, err)
	assert.True(t, d1.Equals(d2, false, false))
}

// TestDeterminant_RowSwapSign checks that one row swap negates the determinant.
func TestDeterminant_RowSwapSign(t *testing.T) {
	ctx := context.Background()
	m := ints(numeric4...)
	require.NoError(t, matrix.SwapRows(m, 0, 2))
	d, err := matrix.Determinant(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, "-72", d.String())
}

// TestDeterminant_RowLinearity checks det with one row scaled by k equals
// k·det.
func TestDeterminant_RowLinearity(t *testing.T) {
	ctx := context.Background()
	k := expr.NewUnknown("k", expr.Assumptions{})

	m := ints(numeric4...)
	require.NoError(t, matrix.ScaleRow(m, 2, expr.Var(k)))
	d, err := matrix.Determinant(ctx, m)
	require.NoError(t, err)

	diff := expr.Sub(d.Clone(), expr.Product(expr.Int(72), expr.Var(k)))
	require.NoError(t, diff.Expand(ctx))
	assert.True(t, diff.IsZero(), "det - 72k = %s", diff)
	assert.Equal(t, "216", valueWith(t, d, k, 3))
}

// TestDeterminant_Symbolic checks the closed 2×2 form and the memoized
// expansion against substituted numeric values.
func TestDeterminant_Symbolic(t *testing.T) {
	ctx := context.Background()
	a, b := expr.NewUnknown("a", expr.Assumptions{}), expr.NewUnknown("b", expr.Assumptions{})

	m2 := expr.MatrixOf(
		[]*expr.Node{expr.Var(a), expr.Var(b)},
		[]*expr.Node{expr.Int(2), expr.Int(3)},
	)
	d, err := matrix.Determinant(ctx, m2)
	require.NoError(t, err)
	want := expr.Sub(expr.Product(expr.Int(3), expr.Var(a)), expr.Product(expr.Int(2), expr.Var(b)))
	assert.True(t, d.Equals(want, false, false), "got %s", d)

	d4, err := matrix.Determinant(ctx, symbolic4(a))
	require.NoError(t, err)
	assert.Equal(t, "57", valueWith(t, d4, a, 1))
	assert.Equal(t, "-81", valueWith(t, d4, a, 7))
}

// TestDeterminant_Errors covers shape validation, the cache guard and cancellation.
func TestDeterminant_Errors(t *testing.T) {
	ctx := context.Background()
	a := expr.NewUnknown("a", expr.Assumptions{})

	_, err := matrix.Determinant(ctx, ints([]int64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Determinant(ctx, expr.Int(1))
	require.ErrorIs(t, err, matrix.ErrNotMatrix)

	_, err = matrix.Determinant(ctx, symbolic4(a), matrix.WithMinorCacheLimit(1))
	require.ErrorIs(t, err, matrix.ErrCacheLimit)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = matrix.Determinant(cctx, symbolic4(a))
	require.ErrorIs(t, err, context.Canceled)
	_, err = matrix.Determinant(cctx, ints(numeric4...))
	require.ErrorIs(t, err, context.Canceled)
}

// TestPermanent checks the unsigned expansion.
func TestPermanent(t *testing.T) {
	ctx := context.Background()
	p, err := matrix.Permanent(ctx, ints([]int64{1, 2}, []int64{3, 4}))
	require.NoError(t, err)
	assert.Equal(t, "10", p.String())

	p, err = matrix.Permanent(ctx, ints([]int64{1, 1, 1}, []int64{1, 1, 1}, []int64{1, 1, 1}))
	require.NoError(t, err)
	assert.Equal(t, "6", p.String())

	_, err = matrix.Permanent(ctx, ints([]int64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestCofactorAndAdjoint covers cofactor signs, the off-diagonal zero case
// and the adjugate identity M·adj(M) = det(M)·I.
func TestCofactorAndAdjoint(t *testing.T) {
	ctx := context.Background()
	diag := ints([]int64{1, 0, 0}, []int64{0, 2, 0}, []int64{0, 0, 3})

	c, err := matrix.Cofactor(ctx, diag, 0, 1)
	require.NoError(t, err)
	assert.True(t, c.IsZero(), "got %s", c)

	c, err = matrix.Cofactor(ctx, diag, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "3", c.String())

	c, err = matrix.Cofactor(ctx, ints([]int64{1, 2}, []int64{3, 4}), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "-3", c.String())

	_, err = matrix.Cofactor(ctx, diag, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	m := ints([]int64{1, 2}, []int64{3, 4})
	require.NoError(t, matrix.Adjoint(ctx, m))
	assert.Equal(t, "[[4, -2], [-3, 1]]", m.String())

	orig := ints([]int64{2, 0, 1}, []int64{1, 3, 2}, []int64{1, 1, 2})
	adj := orig.Clone()
	require.NoError(t, matrix.Adjoint(ctx, adj))
	p, err := matrix.Mul(orig, adj)
	require.NoError(t, err)
	assert.Equal(t, "[[6, 0, 0], [0, 6, 0], [0, 0, 6]]", p.String())

	bad := ints([]int64{1, 2})
	require.ErrorIs(t, matrix.Adjoint(ctx, bad), matrix.ErrNonSquare)
	assert.Equal(t, "[[1, 2]]", bad.String())
}
