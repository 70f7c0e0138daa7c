// SPDX-License-Identifier: MIT

package poly

import (
	"context"

	"github.com/katalvlaran/lvcas/expr"
)

// MaxFractionUnknowns bounds the size of the linear system built by
// DecomposeFractions.
const MaxFractionUnknowns = 64

// denominatorFactor is p^power with p a polynomial of positive degree in x.
type denominatorFactor struct {
	base   *expr.Node
	power  int
	degree int
}

// slot is one unknown numerator coefficient: the x^term coefficient of the
// numerator over factor^power.
type slot struct {
	factor, power, term int
}

// splitFraction separates n into an x-free coefficient, a numerator
// polynomial and the denominator factors. ok is false when n is not a
// quotient of polynomials in x.
func splitFraction(n, x *expr.Node) (coef, num *expr.Node, dens []denominatorFactor, ok bool) {
	factors := []*expr.Node{n}
	if n.Is(expr.KindMultiplication) {
		factors = n.Children()
	}
	var cs, ns []*expr.Node
	for _, f := range factors {
		if !f.Contains(x) {
			cs = append(cs, f.Clone())
			continue
		}
		if f.Is(expr.KindPower) {
			if k, isInt := intExponent(f.Child(1)); isInt && k < 0 {
				base := f.Child(0)
				if !IsPolynomial(base, x) || Degree(base, x) < 1 {
					return nil, nil, nil, false
				}
				dens = append(dens, denominatorFactor{base: base.Clone(), power: -k, degree: Degree(base, x)})
				continue
			}
		}
		ns = append(ns, f.Clone())
	}
	return expr.Product(cs...), expr.Product(ns...), dens, len(dens) > 0
}

// DecomposeFractions rewrites n = c·N(x) / Π p_i(x)^k_i as a sum of
// partial fractions A_ij(x) / p_i(x)^j with deg A_ij < deg p_i, plus the
// polynomial part when deg N ≥ deg of the denominator. The unknown
// numerator coefficients are found by equating coefficients and solving
// the resulting linear system with provably non-zero pivots. On failure n
// is unchanged.
func DecomposeFractions(ctx context.Context, n, x *expr.Node) error {
	const op = "decompose fractions"
	coef, num, dens, ok := splitFraction(n, x)
	if !ok {
		return polyErrorf(op, ErrNotPolynomial)
	}
	if err := num.Expand(ctx); err != nil {
		return polyErrorf(op, err)
	}
	if !IsPolynomial(num, x) {
		return polyErrorf(op, ErrNotPolynomial)
	}

	var slots []slot
	for i, d := range dens {
		for j := 1; j <= d.power; j++ {
			for t := 0; t < d.degree; t++ {
				slots = append(slots, slot{factor: i, power: j, term: t})
			}
		}
	}
	size := len(slots)
	if size > MaxFractionUnknowns {
		return polyErrorf(op, ErrTooLarge)
	}

	// polynomial part
	var result []*expr.Node
	if Degree(num, x) >= size {
		full := expr.Int(1)
		for _, d := range dens {
			full = expr.Product(full, expr.Pow(d.base.Clone(), expr.Int(int64(d.power))))
		}
		q, r, err := LongDivision(ctx, num, full, x)
		if err != nil {
			return polyErrorf(op, err)
		}
		result = append(result, expr.Product(coef.Clone(), q))
		num = r
	}

	// column s holds the coefficients of x^term · M_ij, where
	// M_ij = Π_{l≠i} p_l^k_l · p_i^(k_i−j)
	a := make([]*expr.Node, size*size)
	for s, sl := range slots {
		if expr.Aborted(ctx) {
			return expr.AbortError(ctx, op)
		}
		m := expr.Pow(x.Clone(), expr.Int(int64(sl.term)))
		for l, d := range dens {
			k := d.power
			if l == sl.factor {
				k -= sl.power
			}
			m = expr.Product(m, expr.Pow(d.base.Clone(), expr.Int(int64(k))))
		}
		if err := m.Expand(ctx); err != nil {
			return polyErrorf(op, err)
		}
		for row := 0; row < size; row++ {
			a[row*size+s] = Coefficient(m, x, row)
		}
	}
	b := coefficients(num, x, size-1)

	u, err := solve(ctx, a, b, size)
	if err != nil {
		return polyErrorf(op, err)
	}

	// reassemble A_ij(x) / p_i^j
	for i, d := range dens {
		for j := 1; j <= d.power; j++ {
			var numer []*expr.Node
			for s, sl := range slots {
				if sl.factor == i && sl.power == j && !u[s].IsZero() {
					numer = append(numer, expr.Product(u[s].Clone(), expr.Pow(x.Clone(), expr.Int(int64(sl.term)))))
				}
			}
			if len(numer) == 0 {
				continue
			}
			result = append(result, expr.Product(coef.Clone(), expr.Sum(numer...), expr.Pow(d.base.Clone(), expr.Int(int64(-j)))))
		}
	}
	n.Set(expr.Sum(result...))
	return nil
}

// solve solves the row-major size×size system a·u = b by elimination with
// provably non-zero pivots followed by back substitution.
func solve(ctx context.Context, a, b []*expr.Node, size int) ([]*expr.Node, error) {
	for k := 0; k < size; k++ {
		if expr.Aborted(ctx) {
			return nil, expr.AbortError(ctx, "solve")
		}
		piv := -1
		for i := k; i < size; i++ {
			if a[i*size+k].Represents(expr.PropNonZero) {
				piv = i
				break
			}
		}
		if piv < 0 {
			return nil, ErrUnderdetermined
		}
		if piv != k {
			for j := 0; j < size; j++ {
				a[k*size+j], a[piv*size+j] = a[piv*size+j], a[k*size+j]
			}
			b[k], b[piv] = b[piv], b[k]
		}
		pivot := a[k*size+k]
		for i := k + 1; i < size; i++ {
			if a[i*size+k].IsZero() {
				continue
			}
			f, err := reducedQuotient(ctx, a[i*size+k], pivot)
			if err != nil {
				return nil, err
			}
			a[i*size+k] = expr.Int(0)
			for j := k + 1; j < size; j++ {
				if a[i*size+j], err = reducedDifference(ctx, a[i*size+j], f, a[k*size+j]); err != nil {
					return nil, err
				}
			}
			if b[i], err = reducedDifference(ctx, b[i], f, b[k]); err != nil {
				return nil, err
			}
		}
	}

	u := make([]*expr.Node, size)
	for k := size - 1; k >= 0; k-- {
		acc := b[k].Clone()
		for j := k + 1; j < size; j++ {
			acc = expr.Sub(acc, expr.Product(a[k*size+j].Clone(), u[j].Clone()))
		}
		v, err := reducedQuotient(ctx, acc, a[k*size+k])
		if err != nil {
			return nil, err
		}
		u[k] = v
	}
	return u, nil
}

func reducedQuotient(ctx context.Context, p, q *expr.Node) (*expr.Node, error) {
	r := expr.Div(p.Clone(), q.Clone())
	if err := r.Expand(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// reducedDifference returns p − f·q, expanded.
func reducedDifference(ctx context.Context, p, f, q *expr.Node) (*expr.Node, error) {
	r := expr.Sub(p.Clone(), expr.Product(f.Clone(), q.Clone()))
	if err := r.Expand(ctx); err != nil {
		return nil, err
	}
	return r, nil
}
