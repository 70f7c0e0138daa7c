// SPDX-License-Identifier: MIT

package poly

import "github.com/katalvlaran/lvcas/expr"

// terms returns the top-level terms of p (p itself unless it is a sum).
func terms(p *expr.Node) []*expr.Node {
	if p.Is(expr.KindAddition) {
		return p.Children()
	}
	return []*expr.Node{p}
}

// intExponent returns the exponent of n when it is an exact integer.
func intExponent(n *expr.Node) (int, bool) {
	if !n.IsNumber() || !n.Number().IsInteger() {
		return 0, false
	}
	k, ok := n.Number().Int64()
	return int(k), ok
}

// factorDegree reports k when f is x or x^k with integer k.
func factorDegree(f, x *expr.Node) (int, bool) {
	if f.Equals(x, false, false) {
		return 1, true
	}
	if f.Is(expr.KindPower) && f.Child(0).Equals(x, false, false) {
		return intExponent(f.Child(1))
	}
	return 0, false
}

// termDegree returns the power of x in term t. ok is false when x occurs
// in t other than as x or x^k among its top-level factors.
func termDegree(t, x *expr.Node) (int, bool) {
	if k, ok := factorDegree(t, x); ok {
		return k, true
	}
	if t.Is(expr.KindMultiplication) {
		deg := 0
		for _, f := range t.Children() {
			if k, ok := factorDegree(f, x); ok {
				deg += k
				continue
			}
			if f.Contains(x) {
				return 0, false
			}
		}
		return deg, true
	}
	if t.Contains(x) {
		return 0, false
	}
	return 0, true
}

// Degree returns the highest power of x among the terms of p, 0 if x does
// not occur.
func Degree(p, x *expr.Node) int {
	deg, first := 0, true
	for _, t := range terms(p) {
		k, ok := termDegree(t, x)
		if !ok {
			continue
		}
		if first || k > deg {
			deg, first = k, false
		}
	}
	return deg
}

// LDegree returns the lowest power of x among the terms of p (x-free
// terms count as 0).
func LDegree(p, x *expr.Node) int {
	deg, first := 0, true
	for _, t := range terms(p) {
		k, ok := termDegree(t, x)
		if !ok {
			continue
		}
		if first || k < deg {
			deg, first = k, false
		}
	}
	return deg
}

// IsPolynomial reports whether every term of p is x-free or carries x to a
// non-negative integer power.
func IsPolynomial(p, x *expr.Node) bool {
	for _, t := range terms(p) {
		k, ok := termDegree(t, x)
		if !ok || k < 0 {
			return false
		}
	}
	return true
}

// stripX returns a copy of t without its x factors.
func stripX(t, x *expr.Node) *expr.Node {
	if _, ok := factorDegree(t, x); ok {
		return expr.Int(1)
	}
	if !t.Is(expr.KindMultiplication) {
		return t.Clone()
	}
	rest := make([]*expr.Node, 0, t.Len())
	for _, f := range t.Children() {
		if _, ok := factorDegree(f, x); ok {
			continue
		}
		rest = append(rest, f.Clone())
	}
	return expr.Product(rest...)
}

// Coefficient returns the sum of the terms of p holding x^power, with x
// stripped. The result is a new tree; 0 when no term matches.
func Coefficient(p, x *expr.Node, power int) *expr.Node {
	var parts []*expr.Node
	for _, t := range terms(p) {
		k, ok := termDegree(t, x)
		if ok && k == power {
			parts = append(parts, stripX(t, x))
		}
	}
	return expr.Sum(parts...)
}

// coefficients returns the coefficients of p from x^0 to x^deg.
func coefficients(p, x *expr.Node, deg int) []*expr.Node {
	out := make([]*expr.Node, deg+1)
	for k := range out {
		out[k] = Coefficient(p, x, k)
	}
	return out
}
