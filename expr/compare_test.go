// SPDX-License-Identifier: MIT

package expr_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcas/expr"
	"github.com/katalvlaran/lvcas/number"
	"github.com/katalvlaran/lvcas/units"
)

func TestCompare(t *testing.T) {
	x := unknown("x")
	pos := expr.NewUnknown("p", expr.Assumptions{Sign: expr.SignPositive, Domain: expr.DomainReal})
	nonneg := expr.NewUnknown("q", expr.Assumptions{Sign: expr.SignNonNegative, Domain: expr.DomainReal})

	tests := []struct {
		name string
		a, b *expr.Node
		want expr.ComparisonResult
	}{
		{"numbers less", expr.Int(2), expr.Int(3), expr.Less},
		{"numbers equal", expr.Frac(1, 2), expr.Frac(2, 4), expr.Equal},
		{"interval overlap", expr.Num(number.NewInterval(0, 2)), expr.Int(1), expr.Unknown},
		{"mixed complex", expr.Num(number.NewComplex(number.New(1), number.New(1))), expr.Int(1), expr.Unknown},
		{"structural", expr.Var(x), expr.Var(x), expr.Equal},
		{"difference evaluates", expr.Sum(expr.Var(x), expr.Int(1)), expr.Var(x), expr.Greater},
		{"positive unknown", expr.Var(pos), expr.Int(0), expr.Greater},
		{"non-negative unknown", expr.Var(nonneg), expr.Int(0), expr.EqualOrGreater},
		{"unresolved", expr.Var(x), expr.Int(0), expr.Unknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
			assert.Equal(t, tc.want.Reverse(), tc.b.Compare(tc.a), "antisymmetry")
		})
	}
}

func TestEquals(t *testing.T) {
	x, y := unknown("x"), unknown("y")

	a := expr.Sum(expr.Var(x), expr.Var(y))
	b := expr.Var(y)
	b.Transform(expr.KindAddition, expr.Var(x))
	assert.True(t, a.Equals(b, false, false), "addition is order independent")

	and1 := expr.Logical(expr.KindLogicalAnd, expr.Var(x), expr.Var(y))
	and2 := expr.Logical(expr.KindLogicalAnd, expr.Var(y), expr.Var(x))
	assert.True(t, and1.Equals(and2, false, false))

	lt1 := expr.Comparison(expr.Var(x), expr.OpLess, expr.Var(y))
	lt2 := expr.Comparison(expr.Var(y), expr.OpLess, expr.Var(x))
	assert.False(t, lt1.Equals(lt2, false, false), "comparison operands are ordered")

	m1 := expr.MatrixOf([]*expr.Node{expr.Int(1)}, []*expr.Node{expr.Int(2)})
	m2 := expr.MatrixOf([]*expr.Node{expr.Int(2)}, []*expr.Node{expr.Int(1)})
	assert.False(t, m1.Equals(m2, false, false))

	i1 := expr.Num(number.NewInterval(0, 2))
	i2 := expr.Num(number.NewInterval(1, 3))
	assert.False(t, i1.Equals(i2, false, false))
	assert.True(t, i1.Equals(i2, true, false))
}

func TestRepresents(t *testing.T) {
	rv := expr.NewUnknown("r", expr.Assumptions{Domain: expr.DomainReal})
	pos := expr.NewUnknown("p", expr.Assumptions{Sign: expr.SignPositive, Domain: expr.DomainReal})
	n := expr.NewUnknown("n", expr.Assumptions{Domain: expr.DomainInteger})

	assert.True(t, expr.Pow(expr.Var(rv), expr.Int(2)).Represents(expr.PropNonNegative))
	assert.False(t, expr.Pow(expr.Var(rv), expr.Int(2)).Represents(expr.PropPositive))
	assert.True(t, expr.Sum(expr.Var(pos), expr.Int(1)).Represents(expr.PropPositive))
	assert.True(t, expr.Product(expr.Int(-2), expr.Var(pos)).Represents(expr.PropNegative))
	assert.True(t, expr.Product(expr.Int(2), expr.Var(n)).Represents(expr.PropEven))
	assert.True(t, expr.Sum(expr.Product(expr.Int(2), expr.Var(n)), expr.Int(1)).Represents(expr.PropOdd))
	assert.False(t, expr.Var(unknown("u")).Represents(expr.PropReal))

	known := expr.NewKnown("k", expr.Int(-3))
	assert.True(t, expr.Var(known).Represents(expr.PropNegative))

	v := expr.Vector(expr.Int(1))
	assert.False(t, v.Represents(expr.PropScalar))

	f := &expr.SimpleFunction{FuncName: "abs", Props: []expr.Property{expr.PropNonNegative, expr.PropReal}}
	assert.True(t, expr.Call(f, expr.Var(rv)).Represents(expr.PropNonNegative))

	cmp := expr.Comparison(expr.Var(rv), expr.OpLess, expr.Int(1))
	assert.True(t, cmp.Represents(expr.PropBoolean))
}

func TestEvaluate(t *testing.T) {
	ctx := context.Background()
	a := expr.NewKnown("a", expr.Int(3))

	v, err := expr.Sum(expr.Var(a), expr.Int(1)).Evaluate(ctx)
	require.NoError(t, err)
	c, ok := v.Cmp(number.New(4))
	require.True(t, ok)
	assert.Zero(t, c)

	sq := &expr.SimpleFunction{
		FuncName: "sq",
		Eval: func(args []number.Number) (number.Number, error) {
			return args[0].Mul(args[0]), nil
		},
	}
	v, err = expr.Call(sq, expr.Int(5)).Evaluate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "25", v.String())

	_, err = expr.Var(unknown("x")).Evaluate(ctx)
	assert.ErrorIs(t, err, expr.ErrNotNumeric)

	v, err = expr.Comparison(expr.Int(1), expr.OpLess, expr.Int(2)).Evaluate(ctx)
	require.NoError(t, err)
	assert.True(t, v.IsOne())
}

func TestExpand(t *testing.T) {
	x := unknown("x")
	n := expr.Pow(expr.Sum(expr.Var(x), expr.Int(1)), expr.Int(2))
	require.NoError(t, n.Expand(context.Background()))

	want := expr.Sum(
		expr.Pow(expr.Var(x), expr.Int(2)),
		expr.Product(expr.Int(2), expr.Var(x)),
		expr.Int(1),
	)
	assert.True(t, n.Equals(want, false, false), "got %s", n)

	p := expr.Product(expr.Sum(expr.Var(x), expr.Int(1)), expr.Sum(expr.Var(x), expr.Int(-1)))
	require.NoError(t, p.Expand(context.Background()))
	assert.Equal(t, "x^2 + -1", p.String())
}

func TestExpand_Cancelled(t *testing.T) {
	x := unknown("x")
	n := expr.Pow(expr.Sum(expr.Var(x), expr.Int(1)), expr.Int(3))
	before := n.String()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := n.Expand(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, before, n.String(), "failed expansion leaves the tree unchanged")
}

func TestSortByValue(t *testing.T) {
	v := expr.Vector(expr.Int(3), expr.Int(1), expr.Frac(3, 2))
	require.NoError(t, v.SortByValue(context.Background()))
	assert.Equal(t, "[1, 3/2, 3]", v.String())

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())
	w := expr.Vector(expr.Var(unknown("x")), expr.Int(1))
	require.NoError(t, w.SortByValue(ctx))
	assert.Equal(t, "[x, 1]", w.String(), "incomparable elements keep their order")
	assert.Contains(t, buf.String(), "could not be compared")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestSort(t *testing.T) {
	x, y := unknown("x"), unknown("y")
	n := expr.Var(y)
	n.Transform(expr.KindMultiplication, expr.Var(x), expr.Int(3))
	n.Sort()
	assert.Equal(t, "3*x*y", n.String())
}

func TestReplaceContainsWalk(t *testing.T) {
	x := unknown("x")
	n := expr.Sum(expr.Pow(expr.Var(x), expr.Int(2)), expr.Int(1))
	assert.True(t, n.Contains(expr.Var(x)))

	count := 0
	n.Walk(func(*expr.Node) bool { count++; return true })
	assert.Equal(t, 5, count)

	require.True(t, n.Replace(expr.Var(x), expr.Int(3)))
	assert.False(t, n.Contains(expr.Var(x)))
	v, err := n.Evaluate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10", v.String())
}

func TestExpandComposite(t *testing.T) {
	reg, err := units.DefaultRegistry()
	require.NoError(t, err)
	u, ok := reg.Unit("newton")
	require.True(t, ok)

	n := expr.ExpandComposite(u.(*units.CompositeUnit))
	require.Equal(t, expr.KindMultiplication, n.Kind())
	assert.Equal(t, 3, n.Len())
	assert.Equal(t, "kgram*meter*(second^-2)", n.String())
	assert.True(t, n.Represents(expr.PropPositive))
}
