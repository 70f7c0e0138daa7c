// SPDX-License-Identifier: MIT

package expr

// Kind tags the variant a Node holds. The set is closed: every algorithm in
// this module switches over it exhaustively.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNumber
	KindSymbol
	KindDateTime
	KindAddition
	KindMultiplication
	KindPower
	KindComparison
	KindLogicalAnd
	KindLogicalOr
	KindLogicalXor
	KindLogicalNot
	KindBitwiseAnd
	KindBitwiseOr
	KindBitwiseXor
	KindBitwiseNot
	KindVector
	KindFunction
	KindUnit
	KindVariable
	KindAborted
)

var kindNames = [...]string{
	KindUndefined:      "undefined",
	KindNumber:         "number",
	KindSymbol:         "symbol",
	KindDateTime:       "datetime",
	KindAddition:       "addition",
	KindMultiplication: "multiplication",
	KindPower:          "power",
	KindComparison:     "comparison",
	KindLogicalAnd:     "and",
	KindLogicalOr:      "or",
	KindLogicalXor:     "xor",
	KindLogicalNot:     "not",
	KindBitwiseAnd:     "bitand",
	KindBitwiseOr:      "bitor",
	KindBitwiseXor:     "bitxor",
	KindBitwiseNot:     "bitnot",
	KindVector:         "vector",
	KindFunction:       "function",
	KindUnit:           "unit",
	KindVariable:       "variable",
	KindAborted:        "aborted",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// isSetLike reports kinds whose operands are unordered.
func (k Kind) isSetLike() bool {
	switch k {
	case KindLogicalAnd, KindLogicalOr, KindLogicalXor, KindBitwiseAnd, KindBitwiseOr, KindBitwiseXor:
		return true
	}
	return false
}

// isAssociative reports kinds whose same-kind children are inlined.
func (k Kind) isAssociative() bool {
	switch k {
	case KindAddition, KindMultiplication, KindLogicalAnd, KindLogicalOr, KindBitwiseAnd, KindBitwiseOr:
		return true
	}
	return false
}

// ComparisonOp is the operator of a Comparison node.
type ComparisonOp uint8

const (
	OpEquals ComparisonOp = iota
	OpNotEquals
	OpLess
	OpGreater
	OpEqualsLess
	OpEqualsGreater
)

var opSymbols = [...]string{
	OpEquals:        "=",
	OpNotEquals:     "!=",
	OpLess:          "<",
	OpGreater:       ">",
	OpEqualsLess:    "<=",
	OpEqualsGreater: ">=",
}

// String returns the operator symbol.
func (op ComparisonOp) String() string {
	if int(op) < len(opSymbols) {
		return opSymbols[op]
	}
	return "?"
}

// ComparisonResult is the outcome of Node.Compare: the receiver relative to
// the argument.
type ComparisonResult uint8

const (
	Unknown ComparisonResult = iota
	Equal
	Less
	Greater
	NotEqual
	EqualOrLess
	EqualOrGreater
)

var resultNames = [...]string{
	Unknown:        "unknown",
	Equal:          "equal",
	Less:           "less",
	Greater:        "greater",
	NotEqual:       "not equal",
	EqualOrLess:    "equal or less",
	EqualOrGreater: "equal or greater",
}

// String returns a readable name.
func (r ComparisonResult) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "invalid"
}

// Reverse returns the result with the operands swapped.
func (r ComparisonResult) Reverse() ComparisonResult {
	switch r {
	case Less:
		return Greater
	case Greater:
		return Less
	case EqualOrLess:
		return EqualOrGreater
	case EqualOrGreater:
		return EqualOrLess
	}
	return r
}

// Property names a representational query answered by Node.Represents.
type Property uint8

const (
	PropNumber Property = iota
	PropReal
	PropRational
	PropInteger
	PropPositive
	PropNegative
	PropNonNegative
	PropNonPositive
	PropNonZero
	PropEven
	PropOdd
	PropScalar
	PropNonMatrix
	PropBoolean
)
