// SPDX-License-Identifier: MIT

package expr

// Equals reports structural equality of n and o. Operands of set-like
// kinds and of commutative sums and products are matched as multisets.
// allowInterval lets overlapping intervals compare equal; allowInfinite
// lets same-signed infinities compare equal.
func (n *Node) Equals(o *Node, allowInterval, allowInfinite bool) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil || n.kind != o.kind {
		return false
	}
	switch n.kind {
	case KindNumber:
		return n.num.Equals(o.num, allowInterval, allowInfinite)
	case KindSymbol:
		return n.text == o.text
	case KindDateTime:
		return n.when.Equal(o.when)
	case KindVariable:
		return n.variable == o.variable
	case KindUnit:
		return n.unit == o.unit && samePrefix(n, o)
	case KindFunction:
		if n.fn.Name() != o.fn.Name() {
			return false
		}
	case KindComparison:
		if n.op != o.op {
			return false
		}
	case KindAddition:
		return multisetEqual(n.children, o.children, allowInterval, allowInfinite)
	case KindMultiplication:
		if allRepresent(n.children, PropNonMatrix) && allRepresent(o.children, PropNonMatrix) {
			return multisetEqual(n.children, o.children, allowInterval, allowInfinite)
		}
	case KindLogicalAnd, KindLogicalOr, KindLogicalXor, KindBitwiseAnd, KindBitwiseOr, KindBitwiseXor:
		return multisetEqual(n.children, o.children, allowInterval, allowInfinite)
	case KindUndefined, KindAborted:
		return true
	}
	return orderedEqual(n.children, o.children, allowInterval, allowInfinite)
}

func samePrefix(a, b *Node) bool {
	switch {
	case a.prefix == b.prefix:
		return true
	case a.prefix == nil || b.prefix == nil:
		return false
	}
	return a.prefix.Name == b.prefix.Name && a.prefix.Value.Equals(b.prefix.Value, false, false)
}

func orderedEqual(a, b []*Node, allowInterval, allowInfinite bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i], allowInterval, allowInfinite) {
			return false
		}
	}
	return true
}

func multisetEqual(a, b []*Node, allowInterval, allowInfinite bool) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, x := range a {
		for j, y := range b {
			if !used[j] && x.Equals(y, allowInterval, allowInfinite) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}
