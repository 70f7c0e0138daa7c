// SPDX-License-Identifier: MIT

package expr_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcas/expr"
	"github.com/katalvlaran/lvcas/number"
)

func unknown(name string) *expr.Variable {
	return expr.NewUnknown(name, expr.Assumptions{})
}

func TestSum_FoldsNumbers(t *testing.T) {
	s := expr.Sum(expr.Int(1), expr.Int(2), expr.Frac(1, 2))
	require.True(t, s.IsNumber())
	assert.True(t, s.Number().Equals(number.NewFrac(7, 2), false, false))
}

func TestSum_LikeTerms(t *testing.T) {
	x := unknown("x")

	s := expr.Sum(expr.Var(x), expr.Var(x))
	assert.Equal(t, "2*x", s.String())

	z := expr.Sum(expr.Var(x), expr.Neg(expr.Var(x)))
	assert.True(t, z.IsZero(), "x - x = %s", z)

	s = expr.Sum(expr.Product(expr.Int(3), expr.Var(x)), expr.Int(1), expr.Product(expr.Int(-1), expr.Var(x)))
	assert.Equal(t, "2*x + 1", s.String())
}

func TestSum_TermOrder(t *testing.T) {
	x := unknown("x")
	s := expr.Sum(expr.Int(1), expr.Var(x), expr.Pow(expr.Var(x), expr.Int(2)))
	assert.Equal(t, "x^2 + x + 1", s.String())
	assert.Equal(t, expr.KindAddition, s.Kind())
	assert.Equal(t, 3, s.Len())
}

func TestSum_Vectors(t *testing.T) {
	s := expr.Sum(
		expr.Vector(expr.Int(1), expr.Int(2)),
		expr.Vector(expr.Int(3), expr.Int(4)),
	)
	require.Equal(t, expr.KindVector, s.Kind())
	assert.Equal(t, "[4, 6]", s.String())
}

func TestProduct_Powers(t *testing.T) {
	x := unknown("x")

	p := expr.Product(expr.Var(x), expr.Var(x))
	assert.Equal(t, "x^2", p.String())

	p = expr.Product(expr.Pow(expr.Var(x), expr.Int(2)), expr.Pow(expr.Var(x), expr.Int(-2)))
	assert.True(t, p.IsOne(), "x^2 * x^-2 = %s", p)

	p = expr.Product(expr.Int(0), expr.Var(x))
	assert.True(t, p.IsZero())
}

func TestProduct_DistributesCoefficient(t *testing.T) {
	x := unknown("x")
	p := expr.Product(expr.Int(2), expr.Sum(expr.Var(x), expr.Int(1)))
	assert.Equal(t, "2*x + 2", p.String())
}

func TestPow_Rules(t *testing.T) {
	x := unknown("x")

	tests := []struct {
		name string
		got  *expr.Node
		want string
	}{
		{"zero exponent", expr.Pow(expr.Var(x), expr.Int(0)), "1"},
		{"unit exponent", expr.Pow(expr.Var(x), expr.Int(1)), "x"},
		{"exact root", expr.Pow(expr.Int(4), expr.Frac(1, 2)), "2"},
		{"inexact root stays symbolic", expr.Pow(expr.Int(2), expr.Frac(1, 2)), "2^1/2"},
		{"nested integer power", expr.Pow(expr.Pow(expr.Var(x), expr.Int(2)), expr.Int(3)), "x^6"},
		{"product power", expr.Pow(expr.Product(expr.Int(2), expr.Var(x)), expr.Int(2)), "4*(x^2)"},
		{"one base", expr.Pow(expr.Int(1), expr.Var(x)), "1"},
		{"integer power", expr.Pow(expr.Frac(2, 3), expr.Int(-2)), "9/4"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got.String())
		})
	}
}

func TestPow_MatrixProductKept(t *testing.T) {
	a := expr.MatrixOf(
		[]*expr.Node{expr.Int(0), expr.Int(1)},
		[]*expr.Node{expr.Int(0), expr.Int(0)},
	)
	b := expr.MatrixOf(
		[]*expr.Node{expr.Int(0), expr.Int(0)},
		[]*expr.Node{expr.Int(1), expr.Int(0)},
	)
	ab := expr.Product(a.Clone(), b.Clone())
	require.Equal(t, expr.KindMultiplication, ab.Kind())

	p := expr.Pow(ab.Clone(), expr.Int(2))
	require.Equal(t, expr.KindPower, p.Kind(), "got %s", p)
	assert.True(t, p.Child(0).Equals(ab, false, false), "got %s", p)
	assert.True(t, p.Child(1).Equals(expr.Int(2), false, false))

	x := unknown("x")
	q := expr.Pow(expr.Product(expr.Var(x), expr.Var(unknown("y"))), expr.Int(2))
	assert.Equal(t, expr.KindMultiplication, q.Kind(), "scalar products still distribute")
}

func TestArithmetic_InPlace(t *testing.T) {
	x := unknown("x")
	n := expr.Var(x)
	n.Add(expr.Int(1))
	n.Multiply(expr.Int(2))
	assert.Equal(t, "2*x + 2", n.String())

	n.Subtract(expr.Int(2))
	assert.Equal(t, "2*x", n.String())

	n.Divide(expr.Int(2))
	assert.Equal(t, "x", n.String())

	n.Raise(expr.Int(2))
	n.Invert()
	assert.Equal(t, "x^-2", n.String())

	n.Negate()
	assert.Equal(t, "-1*(x^-2)", n.String())
}

func TestApproximateFlag(t *testing.T) {
	x := unknown("x")
	s := expr.Sum(expr.Var(x), expr.Float(0.5))
	assert.True(t, s.IsApproximate())
	assert.Equal(t, number.FloatPrecision, s.Precision())

	e := expr.Sum(expr.Var(x), expr.Int(1))
	assert.False(t, e.IsApproximate())
	assert.Equal(t, -1, e.Precision())
}

func TestProtectedNodesDoNotMerge(t *testing.T) {
	a := expr.Int(2)
	a.SetProtected(true)
	s := expr.Sum(a, expr.Int(3))
	assert.Equal(t, expr.KindAddition, s.Kind())
	assert.Equal(t, 2, s.Len())
}

func TestTransform(t *testing.T) {
	x, y := unknown("x"), unknown("y")

	n := expr.Var(x)
	n.Transform(expr.KindAddition, expr.Var(x))
	assert.Equal(t, 2, n.Len(), "Transform does not merge")

	n.TransformInPlace(expr.KindAddition, expr.Var(y))
	assert.Equal(t, 3, n.Len())

	require.NoError(t, n.Canonicalize(context.Background()))
	assert.Equal(t, "2*x + y", n.String())

	c := expr.Var(x)
	c.TransformComparison(expr.OpLess, expr.Int(3))
	assert.Equal(t, "x < 3", c.String())
}

func TestClone_IsDeep(t *testing.T) {
	x := unknown("x")
	a := expr.Sum(expr.Var(x), expr.Int(1))
	b := a.Clone()
	b.Add(expr.Int(1))
	assert.Equal(t, "x + 1", a.String())
	assert.Equal(t, "x + 2", b.String())
}
