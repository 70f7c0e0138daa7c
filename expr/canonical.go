// SPDX-License-Identifier: MIT

package expr

import (
	"sort"

	"github.com/katalvlaran/lvcas/number"
)

// Canonical construction.
//
// Sum, Product and Pow build their result by merging on append:
//   - numbers fold into one numeric term/coefficient;
//   - terms with the same non-numeric part add their coefficients;
//   - factors with the same base add their exponents;
//   - neutral elements vanish, zero annihilates a scalar product;
//   - a lone numeric coefficient is distributed over a lone sum;
//   - protected nodes never merge.
//
// All three take ownership of their arguments.

// Sum returns the canonical sum of terms.
func Sum(terms ...*Node) *Node { return mergeTerms(terms) }

// Product returns the canonical product of factors.
func Product(factors ...*Node) *Node { return mergeFactors(factors) }

// Pow returns the canonical power base^exp.
func Pow(base, exp *Node) *Node { return raise(base, exp) }

// Neg returns −n.
func Neg(n *Node) *Node { return Product(Int(-1), n) }

// Sub returns a − b.
func Sub(a, b *Node) *Node { return Sum(a, Neg(b)) }

// Div returns a / b as a · b^−1.
func Div(a, b *Node) *Node { return Product(a, Pow(b, Int(-1))) }

// Add sets n = n + o.
func (n *Node) Add(o *Node) { n.Set(Sum(n.detach(), o)) }

// Subtract sets n = n − o.
func (n *Node) Subtract(o *Node) { n.Set(Sub(n.detach(), o)) }

// Multiply sets n = n · o.
func (n *Node) Multiply(o *Node) { n.Set(Product(n.detach(), o)) }

// Divide sets n = n / o.
func (n *Node) Divide(o *Node) { n.Set(Div(n.detach(), o)) }

// Raise sets n = n^o.
func (n *Node) Raise(o *Node) { n.Set(Pow(n.detach(), o)) }

// Negate sets n = −n.
func (n *Node) Negate() { n.Set(Neg(n.detach())) }

// Invert sets n = n^−1.
func (n *Node) Invert() { n.Set(Pow(n.detach(), Int(-1))) }

// detach moves n's contents into a fresh node, leaving n free to be overwritten.
func (n *Node) detach() *Node {
	c := new(Node)
	*c = *n
	c.paren = false
	return c
}

// flagSet accumulates approx/prec of everything a merge consumed.
type flagSet struct {
	approx bool
	prec   int
}

func (f *flagSet) add(n *Node) {
	f.approx = f.approx || n.approx
	f.prec = minPrec(f.prec, n.prec)
}

func (f flagSet) apply(n *Node) *Node {
	n.approx = n.approx || f.approx
	n.prec = minPrec(n.prec, f.prec)
	return n
}

func composite(kind Kind, children []*Node) *Node {
	n := &Node{kind: kind, children: children}
	n.refreshFlags()
	return n
}

// ---------- Addition ----------

func flattenInto(kind Kind, dst []*Node, nodes []*Node) []*Node {
	for _, t := range nodes {
		if t.kind == kind && !t.protect {
			dst = flattenInto(kind, dst, t.children)
			continue
		}
		dst = append(dst, t)
	}
	return dst
}

func mergeTerms(terms []*Node) *Node {
	var flags flagSet
	flat := flattenInto(KindAddition, make([]*Node, 0, len(terms)), terms)
	out := make([]*Node, 0, len(flat))
	for _, t := range flat {
		flags.add(t)
		if t.IsZero() && !t.protect {
			continue
		}
		merged := false
		for i, u := range out {
			if s := addPair(u, t); s != nil {
				out[i] = s
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, t)
		}
	}
	kept := out[:0]
	for _, t := range out {
		if t.IsZero() && !t.protect {
			continue
		}
		kept = append(kept, t)
	}
	switch len(kept) {
	case 0:
		return flags.apply(Int(0))
	case 1:
		return flags.apply(kept[0])
	}
	sortTerms(kept)
	return flags.apply(composite(KindAddition, kept))
}

// splitCoefficient separates the numeric coefficient of a term. rest is nil
// for a pure number. rest may share children with t.
func splitCoefficient(t *Node) (number.Number, *Node) {
	switch t.kind {
	case KindNumber:
		return t.num, nil
	case KindMultiplication:
		if !t.protect && len(t.children) >= 2 && t.children[0].kind == KindNumber {
			if len(t.children) == 2 {
				return t.children[0].num, t.children[1]
			}
			rest := make([]*Node, len(t.children)-1)
			copy(rest, t.children[1:])
			return t.children[0].num, composite(KindMultiplication, rest)
		}
	}
	return number.New(1), t
}

func addPair(a, b *Node) *Node {
	if a.protect || b.protect {
		return nil
	}
	if a.kind == KindNumber && b.kind == KindNumber {
		return Num(a.num.Add(b.num))
	}
	if a.kind == KindVector && b.kind == KindVector {
		if len(a.children) != len(b.children) {
			return nil
		}
		elems := make([]*Node, len(a.children))
		for i := range a.children {
			elems[i] = Sum(a.children[i], b.children[i])
		}
		return Vector(elems...)
	}
	ca, ra := splitCoefficient(a)
	cb, rb := splitCoefficient(b)
	if ra == nil || rb == nil || !ra.Equals(rb, false, false) {
		return nil
	}
	c := ca.Add(cb)
	if c.IsZero() {
		return Num(c)
	}
	return Product(Num(c), ra)
}

// ---------- Multiplication ----------

func mergeFactors(factors []*Node) *Node {
	var flags flagSet
	flat := flattenInto(KindMultiplication, make([]*Node, 0, len(factors)), factors)
	coef := number.New(1)
	out := make([]*Node, 0, len(flat))
	for _, f := range flat {
		flags.add(f)
		if f.kind == KindNumber && !f.protect {
			coef = coef.Mul(f.num)
			continue
		}
		merged := false
		for i, u := range out {
			if p := mulPair(u, f); p != nil {
				out[i] = p
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, f)
		}
	}
	// merged powers may have collapsed into numbers
	kept := out[:0]
	for _, f := range out {
		if f.kind == KindNumber && !f.protect {
			coef = coef.Mul(f.num)
			continue
		}
		kept = append(kept, f)
	}
	out = kept

	if len(out) == 0 || (coef.IsZero() && allRepresent(out, PropScalar)) {
		return flags.apply(Num(coef))
	}
	if coef.IsOne() {
		if len(out) == 1 {
			return flags.apply(out[0])
		}
		sortScalarFactors(out)
		return flags.apply(composite(KindMultiplication, out))
	}
	if len(out) == 1 && out[0].kind == KindAddition && !out[0].protect {
		terms := make([]*Node, len(out[0].children))
		for i, t := range out[0].children {
			terms[i] = Product(Num(coef), t)
		}
		return flags.apply(Sum(terms...))
	}
	sortScalarFactors(out)
	return flags.apply(composite(KindMultiplication, append([]*Node{Num(coef)}, out...)))
}

func allRepresent(nodes []*Node, p Property) bool {
	for _, n := range nodes {
		if !n.Represents(p) {
			return false
		}
	}
	return true
}

// powerParts splits x^e into (x, e); e is nil for a non-power.
func powerParts(n *Node) (*Node, *Node) {
	if n.kind == KindPower && len(n.children) == 2 && !n.protect {
		return n.children[0], n.children[1]
	}
	return n, nil
}

func mulPair(a, b *Node) *Node {
	if a.protect || b.protect || a.kind == KindVector || b.kind == KindVector {
		return nil
	}
	ba, ea := powerParts(a)
	bb, eb := powerParts(b)
	if !ba.Equals(bb, false, false) {
		return nil
	}
	if ea == nil {
		ea = Int(1)
	}
	if eb == nil {
		eb = Int(1)
	}
	return raise(ba, Sum(ea, eb))
}

// ---------- Power ----------

func raise(base, exp *Node) *Node {
	var flags flagSet
	flags.add(base)
	flags.add(exp)
	if base.protect || exp.protect {
		return composite(KindPower, []*Node{base, exp})
	}
	if exp.kind == KindNumber {
		if exp.num.IsZero() && !exp.num.IsApproximate() {
			return flags.apply(Int(1))
		}
		if exp.IsOne() {
			return base
		}
		if base.kind == KindNumber {
			r, err := base.num.Pow(exp.num)
			if err == nil && (!r.IsApproximate() || base.approx || exp.approx) {
				return flags.apply(Num(r))
			}
		}
		if exp.num.IsInteger() {
			switch base.kind {
			case KindPower:
				return raise(base.children[0], Product(base.children[1], exp))
			case KindMultiplication:
				// (a·b)^n = a^n·b^n needs commuting factors
				if !allRepresent(base.children, PropNonMatrix) {
					break
				}
				factors := make([]*Node, len(base.children))
				for i, f := range base.children {
					factors[i] = raise(f, exp.Clone())
				}
				return flags.apply(Product(factors...))
			}
		}
	}
	if base.kind == KindNumber && !base.approx {
		if base.IsOne() {
			return flags.apply(Int(1))
		}
		if base.IsZero() && exp.Represents(PropPositive) {
			return flags.apply(Int(0))
		}
	}
	return composite(KindPower, []*Node{base, exp})
}

// ---------- Ordering ----------

func sortTerms(terms []*Node) {
	sort.SliceStable(terms, func(i, j int) bool { return cmpTerm(terms[i], terms[j]) < 0 })
}

// sortScalarFactors leaves products involving matrices in written order.
func sortScalarFactors(factors []*Node) {
	if allRepresent(factors, PropNonMatrix) {
		sortFactors(factors)
	}
}

func sortFactors(factors []*Node) {
	sort.SliceStable(factors, func(i, j int) bool { return cmpStruct(factors[i], factors[j], false) < 0 })
}
