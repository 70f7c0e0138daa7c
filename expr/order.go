// SPDX-License-Identifier: MIT

package expr

import (
	"context"
	"strings"
)

// kindRank orders node kinds in the structural order: numbers first,
// atoms next, composites last.
func kindRank(k Kind) int {
	switch k {
	case KindNumber:
		return 0
	case KindSymbol:
		return 1
	case KindVariable:
		return 2
	case KindUnit:
		return 3
	case KindDateTime:
		return 4
	case KindFunction:
		return 5
	case KindPower:
		return 6
	case KindMultiplication:
		return 7
	case KindAddition:
		return 8
	case KindVector:
		return 9
	case KindComparison:
		return 10
	case KindLogicalNot, KindLogicalAnd, KindLogicalOr, KindLogicalXor:
		return 11 + int(k-KindLogicalAnd)
	case KindBitwiseAnd, KindBitwiseOr, KindBitwiseXor, KindBitwiseNot:
		return 15 + int(k-KindBitwiseAnd)
	case KindUndefined:
		return 30
	case KindAborted:
		return 31
	}
	return 32
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// cmpStruct is a total structural order on trees. Powers sort next to their
// base; with equal bases the exponent decides, ascending unless expDesc.
func cmpStruct(a, b *Node, expDesc bool) int {
	if a == b {
		return 0
	}
	if a.kind == KindPower || b.kind == KindPower {
		ba, ea := powerParts(a)
		bb, eb := powerParts(b)
		if ba != a || bb != b {
			if c := cmpStruct(ba, bb, expDesc); c != 0 {
				return c
			}
			c := cmpExponent(ea, eb)
			if expDesc {
				c = -c
			}
			return c
		}
	}
	if c := cmpInt(kindRank(a.kind), kindRank(b.kind)); c != 0 {
		return c
	}
	switch a.kind {
	case KindNumber:
		if c, ok := a.num.Cmp(b.num); ok {
			return c
		}
		return strings.Compare(a.num.String(), b.num.String())
	case KindSymbol:
		return strings.Compare(a.text, b.text)
	case KindVariable:
		return strings.Compare(a.variable.Name, b.variable.Name)
	case KindUnit:
		if c := strings.Compare(a.unit.Name(), b.unit.Name()); c != 0 {
			return c
		}
		return strings.Compare(prefixName(a), prefixName(b))
	case KindDateTime:
		return a.when.Compare(b.when)
	case KindFunction:
		if c := strings.Compare(a.fn.Name(), b.fn.Name()); c != 0 {
			return c
		}
	case KindComparison:
		if c := cmpInt(int(a.op), int(b.op)); c != 0 {
			return c
		}
	}
	for i := 0; i < len(a.children) && i < len(b.children); i++ {
		if c := cmpStruct(a.children[i], b.children[i], expDesc); c != 0 {
			return c
		}
	}
	return cmpInt(len(a.children), len(b.children))
}

func prefixName(n *Node) string {
	if n.prefix == nil {
		return ""
	}
	return n.prefix.Name
}

// cmpExponent orders exponents; nil stands for 1.
func cmpExponent(a, b *Node) int {
	if a == nil {
		a = one
	}
	if b == nil {
		b = one
	}
	return cmpStruct(a, b, false)
}

var one = Int(1)

// cmpTerm orders the terms of a sum: numbers last, higher degree first,
// coefficients ignored until the rest ties.
func cmpTerm(a, b *Node) int {
	ca, ra := splitCoefficient(a)
	cb, rb := splitCoefficient(b)
	switch {
	case ra == nil && rb == nil:
		return cmpStruct(a, b, false)
	case ra == nil:
		return 1
	case rb == nil:
		return -1
	}
	if c := cmpStruct(ra, rb, true); c != 0 {
		return c
	}
	if c, ok := ca.Cmp(cb); ok {
		return c
	}
	return 0
}

// Sort orders the operands of every commutative node in the tree: terms
// of sums, factors of scalar products and operands of set-like kinds.
func (n *Node) Sort() {
	for _, c := range n.children {
		c.Sort()
	}
	if n.protect {
		return
	}
	switch {
	case n.kind == KindAddition:
		sortTerms(n.children)
	case n.kind == KindMultiplication:
		if allRepresent(n.children, PropNonMatrix) {
			sortFactors(n.children)
		}
	case n.kind.isSetLike():
		sortFactors(n.children)
	}
}

// SortByValue sorts the elements of a Vector by Compare, ascending. Pairs
// that cannot be compared keep their relative order and are reported as a
// warning. A cancelled ctx leaves n unchanged.
func (n *Node) SortByValue(ctx context.Context) error {
	if n.kind != KindVector {
		return nil
	}
	elems := n.Children()
	unsolved := false
	// insertion sort keeps the order of incomparable neighbours
	for i := 1; i < len(elems); i++ {
		if Aborted(ctx) {
			return AbortError(ctx, "sort")
		}
		for j := i; j > 0; j-- {
			r := elems[j].Compare(elems[j-1])
			if r == Unknown || r == NotEqual || r == EqualOrLess || r == EqualOrGreater {
				unsolved = true
				break
			}
			if r != Less {
				break
			}
			elems[j], elems[j-1] = elems[j-1], elems[j]
		}
	}
	if unsolved {
		Report(ctx, true, "sort: some elements could not be compared")
	}
	n.children = elems
	return nil
}
