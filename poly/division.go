// SPDX-License-Identifier: MIT

package poly

import (
	"context"

	"github.com/katalvlaran/lvcas/expr"
)

// MaxDivisionSteps bounds the number of subtraction steps of LongDivision.
const MaxDivisionSteps = 10000

// expanded returns an expanded clone of n.
func expanded(ctx context.Context, n *expr.Node) (*expr.Node, error) {
	c := n.Clone()
	if err := c.Expand(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// LongDivision divides n by d as polynomials in x and returns quotient and
// remainder with q·d + r = n and Degree(r) < Degree(d). Symbolic leading
// coefficients are allowed as long as each ratio reduces to a polynomial
// expression.
func LongDivision(ctx context.Context, n, d, x *expr.Node) (q, r *expr.Node, err error) {
	const op = "long division"
	den, err := expanded(ctx, d)
	if err != nil {
		return nil, nil, polyErrorf(op, err)
	}
	if den.IsZero() {
		return nil, nil, polyErrorf(op, ErrZeroDivisor)
	}
	rem, err := expanded(ctx, n)
	if err != nil {
		return nil, nil, polyErrorf(op, err)
	}
	if !IsPolynomial(rem, x) || !IsPolynomial(den, x) {
		return nil, nil, polyErrorf(op, ErrNotPolynomial)
	}

	dd := Degree(den, x)
	lcd := Coefficient(den, x, dd)
	quo := expr.Int(0)
	for step := 0; !rem.IsZero(); step++ {
		if expr.Aborted(ctx) {
			return nil, nil, expr.AbortError(ctx, op)
		}
		if step >= MaxDivisionSteps {
			return nil, nil, polyErrorf(op, ErrIterationLimit)
		}
		dr := Degree(rem, x)
		if dr < dd {
			break
		}
		ratio, err := divideCoefficient(ctx, Coefficient(rem, x, dr), lcd)
		if err != nil {
			return nil, nil, polyErrorf(op, err)
		}
		t := expr.Product(ratio, expr.Pow(x.Clone(), expr.Int(int64(dr-dd))))
		quo = expr.Sum(quo, t.Clone())
		next := expr.Sub(rem, expr.Product(t, den.Clone()))
		if err := next.Expand(ctx); err != nil {
			return nil, nil, polyErrorf(op, err)
		}
		if !next.IsZero() && Degree(next, x) >= dr {
			return nil, nil, polyErrorf(op, ErrUnresolved)
		}
		rem = next
	}
	return quo, rem, nil
}

// divideCoefficient returns a/b when the quotient reduces to a
// polynomial expression in its symbols.
func divideCoefficient(ctx context.Context, a, b *expr.Node) (*expr.Node, error) {
	if b.IsZero() {
		return nil, ErrZeroDivisor
	}
	if a.IsNumber() && b.IsNumber() {
		v, err := a.Number().Div(b.Number())
		if err != nil {
			return nil, err
		}
		return expr.Num(v), nil
	}
	r := expr.Div(a.Clone(), b.Clone())
	if err := r.Expand(ctx); err != nil {
		return nil, err
	}
	if !reduced(r) {
		return nil, ErrUnresolved
	}
	return r, nil
}

// reduced reports that n has no negative power of a non-numeric base.
func reduced(n *expr.Node) bool {
	ok := true
	n.Walk(func(c *expr.Node) bool {
		if !ok {
			return false
		}
		if c.Is(expr.KindPower) && !c.Child(0).IsNumber() {
			if e := c.Child(1); !e.IsNumber() || !e.Number().IsNonNegative() {
				ok = false
			}
		}
		return ok
	})
	return ok
}
