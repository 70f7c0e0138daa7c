// SPDX-License-Identifier: MIT

package expr

import "github.com/katalvlaran/lvcas/number"

// Represents reports whether n provably has property p. A false answer
// means "not known", never "known not".
func (n *Node) Represents(p Property) bool {
	switch n.kind {
	case KindNumber:
		return numberRepresents(n.num, p)
	case KindSymbol, KindDateTime:
		return p == PropScalar || p == PropNonMatrix
	case KindUnit:
		switch p {
		case PropPositive, PropNonNegative, PropNonZero, PropReal, PropScalar, PropNonMatrix:
			return true
		}
		return false
	case KindVariable:
		if n.variable.Value != nil {
			return n.variable.Value.Represents(p)
		}
		return n.variable.Assume.Represents(p)
	case KindFunction:
		if n.cached != nil {
			return n.cached.Represents(p)
		}
		return n.fn.Represents(p, n.children)
	case KindComparison, KindLogicalAnd, KindLogicalOr, KindLogicalXor, KindLogicalNot:
		switch p {
		case PropBoolean, PropInteger, PropRational, PropReal, PropNumber, PropNonNegative, PropScalar, PropNonMatrix:
			return true
		}
		return false
	case KindBitwiseAnd, KindBitwiseOr, KindBitwiseXor, KindBitwiseNot:
		switch p {
		case PropInteger, PropRational, PropReal, PropNumber, PropScalar, PropNonMatrix:
			return allRepresent(n.children, PropInteger)
		case PropBoolean:
			return allRepresent(n.children, PropBoolean) && n.kind != KindBitwiseNot
		}
		return false
	case KindAddition:
		return sumRepresents(n.children, p)
	case KindMultiplication:
		return productRepresents(n.children, p)
	case KindPower:
		return powerRepresents(n.children[0], n.children[1], p)
	case KindVector, KindUndefined, KindAborted:
		return false
	}
	return false
}

func numberRepresents(v number.Number, p Property) bool {
	switch p {
	case PropNumber, PropScalar, PropNonMatrix:
		return true
	case PropReal:
		return v.IsReal()
	case PropRational:
		return v.IsRational()
	case PropInteger:
		return v.IsInteger()
	case PropPositive:
		return v.IsPositive()
	case PropNegative:
		return v.IsNegative()
	case PropNonNegative:
		return v.IsNonNegative()
	case PropNonPositive:
		return v.IsNonPositive()
	case PropNonZero:
		return v.IsNonZero()
	case PropEven:
		return v.IsEven()
	case PropOdd:
		return v.IsOdd()
	case PropBoolean:
		return !v.IsApproximate() && (v.IsZero() || v.IsOne())
	}
	return false
}

func sumRepresents(terms []*Node, p Property) bool {
	switch p {
	case PropNumber, PropReal, PropRational, PropInteger, PropScalar, PropNonMatrix, PropNonNegative, PropNonPositive:
		return allRepresent(terms, p)
	case PropPositive:
		return allRepresent(terms, PropNonNegative) && anyRepresent(terms, PropPositive)
	case PropNegative:
		return allRepresent(terms, PropNonPositive) && anyRepresent(terms, PropNegative)
	case PropNonZero:
		return sumRepresents(terms, PropPositive) || sumRepresents(terms, PropNegative)
	case PropEven, PropOdd:
		odd := 0
		for _, t := range terms {
			switch {
			case t.Represents(PropOdd):
				odd++
			case !t.Represents(PropEven):
				return false
			}
		}
		return (odd%2 == 1) == (p == PropOdd)
	}
	return false
}

func anyRepresent(nodes []*Node, p Property) bool {
	for _, n := range nodes {
		if n.Represents(p) {
			return true
		}
	}
	return false
}

// signOf classifies a node's provable sign.
type signClass uint8

const (
	signNone signClass = iota
	signPos
	signNeg
	signNonNeg
	signNonPos
)

func signOf(n *Node) signClass {
	switch {
	case n.Represents(PropPositive):
		return signPos
	case n.Represents(PropNegative):
		return signNeg
	case n.Represents(PropNonNegative):
		return signNonNeg
	case n.Represents(PropNonPositive):
		return signNonPos
	}
	return signNone
}

// productSign folds the sign classes of factors; strict reports that no
// factor can be zero.
func productSign(factors []*Node) (negative, strict, known bool) {
	strict = true
	for _, f := range factors {
		switch signOf(f) {
		case signPos:
		case signNeg:
			negative = !negative
		case signNonNeg:
			strict = false
		case signNonPos:
			negative = !negative
			strict = false
		default:
			return false, false, false
		}
	}
	return negative, strict, true
}

func productRepresents(factors []*Node, p Property) bool {
	switch p {
	case PropNumber, PropReal, PropRational, PropInteger, PropScalar, PropNonMatrix, PropNonZero:
		return allRepresent(factors, p)
	case PropPositive, PropNegative, PropNonNegative, PropNonPositive:
		neg, strict, known := productSign(factors)
		if !known {
			return false
		}
		switch p {
		case PropPositive:
			return strict && !neg
		case PropNegative:
			return strict && neg
		case PropNonNegative:
			return !neg
		}
		return neg
	case PropEven:
		return allRepresent(factors, PropInteger) && anyRepresent(factors, PropEven)
	case PropOdd:
		return allRepresent(factors, PropOdd)
	}
	return false
}

func powerRepresents(b, e *Node, p Property) bool {
	defined := b.Represents(PropNonZero) || e.Represents(PropPositive)
	switch p {
	case PropNumber:
		return b.Represents(PropNumber) && e.Represents(PropNumber) && defined
	case PropReal:
		return defined && ((b.Represents(PropReal) && e.Represents(PropInteger)) ||
			(b.Represents(PropPositive) && e.Represents(PropReal)))
	case PropRational:
		return defined && b.Represents(PropRational) && e.Represents(PropInteger)
	case PropInteger:
		return b.Represents(PropInteger) && e.Represents(PropInteger) && e.Represents(PropNonNegative)
	case PropPositive:
		return (b.Represents(PropPositive) && e.Represents(PropReal)) ||
			(b.Represents(PropReal) && b.Represents(PropNonZero) && e.Represents(PropEven))
	case PropNegative:
		return b.Represents(PropNegative) && e.Represents(PropOdd)
	case PropNonNegative:
		return powerRepresents(b, e, PropPositive) ||
			(b.Represents(PropNonNegative) && e.Represents(PropPositive)) ||
			(b.Represents(PropReal) && e.Represents(PropEven) && e.Represents(PropPositive))
	case PropNonPositive:
		return powerRepresents(b, e, PropNegative) ||
			(b.Represents(PropNonPositive) && e.Represents(PropOdd) && e.Represents(PropPositive))
	case PropNonZero:
		return b.Represents(PropNonZero) && e.Represents(PropNumber)
	case PropEven:
		return b.Represents(PropEven) && e.Represents(PropInteger) && e.Represents(PropPositive)
	case PropOdd:
		return b.Represents(PropOdd) && e.Represents(PropInteger) && e.Represents(PropNonNegative)
	case PropScalar, PropNonMatrix:
		return b.Represents(p) && e.Represents(p)
	}
	return false
}
