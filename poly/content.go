// SPDX-License-Identifier: MIT

package poly

import (
	"context"

	"github.com/katalvlaran/lvcas/expr"
	"github.com/katalvlaran/lvcas/number"
)

// monomial is a term split into a numeric coefficient and integer powers
// of non-numeric bases.
type monomial struct {
	coef  number.Number
	bases []*expr.Node
	exps  []int
}

func monomialOf(t *expr.Node) monomial {
	m := monomial{coef: number.New(1)}
	factors := []*expr.Node{t}
	if t.Is(expr.KindMultiplication) {
		factors = t.Children()
	}
	for _, f := range factors {
		switch {
		case f.IsNumber():
			m.coef = m.coef.Mul(f.Number())
		case f.Is(expr.KindPower):
			if k, ok := intExponent(f.Child(1)); ok {
				m.bases = append(m.bases, f.Child(0))
				m.exps = append(m.exps, k)
				continue
			}
			fallthrough
		default:
			m.bases = append(m.bases, f)
			m.exps = append(m.exps, 1)
		}
	}
	return m
}

// exponentOf returns the power of base in m, 0 if absent.
func (m monomial) exponentOf(base *expr.Node) int {
	for i, b := range m.bases {
		if b.Equals(base, false, false) {
			return m.exps[i]
		}
	}
	return 0
}

// termGCD returns the greatest common monomial of ms: the gcd of the
// numeric coefficients times every base common to all, at its lowest
// positive power.
func termGCD(ms []monomial) *expr.Node {
	if len(ms) == 0 {
		return expr.Int(0)
	}
	g := ms[0].coef.Abs()
	for _, m := range ms[1:] {
		next, ok := g.GCD(m.coef)
		if !ok {
			g = number.New(1)
			break
		}
		g = next
	}
	factors := []*expr.Node{expr.Num(g)}
	for i, b := range ms[0].bases {
		k := ms[0].exps[i]
		for _, m := range ms[1:] {
			k = min(k, m.exponentOf(b))
		}
		if k > 0 {
			factors = append(factors, expr.Pow(b.Clone(), expr.Int(int64(k))))
		}
	}
	return expr.Product(factors...)
}

func monomialsOf(nodes ...*expr.Node) []monomial {
	var ms []monomial
	for _, n := range nodes {
		for _, t := range terms(n) {
			if t.IsZero() {
				continue
			}
			ms = append(ms, monomialOf(t))
		}
	}
	return ms
}

// GCD returns the greatest common monomial divisor of a and b after
// expansion: the gcd of all numeric coefficients times the symbolic
// factors shared by every term.
func GCD(ctx context.Context, a, b *expr.Node) (*expr.Node, error) {
	ea, err := expanded(ctx, a)
	if err != nil {
		return nil, polyErrorf("gcd", err)
	}
	eb, err := expanded(ctx, b)
	if err != nil {
		return nil, polyErrorf("gcd", err)
	}
	return termGCD(monomialsOf(ea, eb)), nil
}

// Content returns the gcd of the coefficients of p in x, carrying the sign
// of the leading coefficient. Numeric coefficients give a numeric gcd;
// symbolic ones the common monomial of all coefficient terms.
func Content(ctx context.Context, p, x *expr.Node) (*expr.Node, error) {
	ep, err := expanded(ctx, p)
	if err != nil {
		return nil, polyErrorf("content", err)
	}
	return content(ctx, ep, x)
}

func content(ctx context.Context, ep, x *expr.Node) (*expr.Node, error) {
	if !IsPolynomial(ep, x) {
		return nil, polyErrorf("content", ErrNotPolynomial)
	}
	deg := Degree(ep, x)
	coeffs := coefficients(ep, x, deg)
	if expr.Aborted(ctx) {
		return nil, expr.AbortError(ctx, "content")
	}
	c := termGCD(monomialsOf(coeffs...))
	if c.IsZero() {
		return c, nil
	}
	lead := terms(coeffs[deg])[0]
	if monomialOf(lead).coef.IsNegative() {
		c = expr.Neg(c)
	}
	return c, nil
}

// PrimitivePart returns p divided by its Content, so that
// Content(p)·PrimitivePart(p) expands to p. The zero polynomial is its own
// primitive part.
func PrimitivePart(ctx context.Context, p, x *expr.Node) (*expr.Node, error) {
	const op = "primitive part"
	ep, err := expanded(ctx, p)
	if err != nil {
		return nil, polyErrorf(op, err)
	}
	c, err := content(ctx, ep, x)
	if err != nil {
		return nil, err
	}
	if c.IsZero() {
		return expr.Int(0), nil
	}
	deg := Degree(ep, x)
	parts := make([]*expr.Node, 0, deg+1)
	for k, coef := range coefficients(ep, x, deg) {
		if expr.Aborted(ctx) {
			return nil, expr.AbortError(ctx, op)
		}
		if coef.IsZero() {
			continue
		}
		r, err := divideCoefficient(ctx, coef, c)
		if err != nil {
			return nil, polyErrorf(op, err)
		}
		parts = append(parts, expr.Product(r, expr.Pow(x.Clone(), expr.Int(int64(k)))))
	}
	return expr.Sum(parts...), nil
}
