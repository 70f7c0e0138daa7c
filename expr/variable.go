// SPDX-License-Identifier: MIT

package expr

import (
	"github.com/katalvlaran/lvcas/number"
)

// Sign is an assumption about the sign of an unknown.
type Sign uint8

const (
	SignUnknown Sign = iota
	SignPositive
	SignNonNegative
	SignNegative
	SignNonPositive
	SignNonZero
)

// Domain is an assumption about the number set of an unknown.
type Domain uint8

const (
	DomainUnknown Domain = iota
	DomainNumber
	DomainReal
	DomainRational
	DomainInteger
	DomainBoolean
)

// Assumptions describe what is known about an unknown variable.
type Assumptions struct {
	Sign   Sign
	Domain Domain
}

// Represents answers p from the assumptions alone.
func (a Assumptions) Represents(p Property) bool {
	switch p {
	case PropNumber:
		return a.Domain != DomainUnknown || a.Sign != SignUnknown
	case PropReal:
		return a.Domain >= DomainReal || (a.Sign != SignUnknown && a.Sign != SignNonZero)
	case PropRational:
		return a.Domain == DomainRational || a.Domain == DomainInteger || a.Domain == DomainBoolean
	case PropInteger:
		return a.Domain == DomainInteger || a.Domain == DomainBoolean
	case PropPositive:
		return a.Sign == SignPositive
	case PropNegative:
		return a.Sign == SignNegative
	case PropNonNegative:
		return a.Sign == SignPositive || a.Sign == SignNonNegative || a.Domain == DomainBoolean
	case PropNonPositive:
		return a.Sign == SignNegative || a.Sign == SignNonPositive
	case PropNonZero:
		return a.Sign == SignPositive || a.Sign == SignNegative || a.Sign == SignNonZero
	case PropBoolean:
		return a.Domain == DomainBoolean
	case PropScalar, PropNonMatrix:
		return true
	}
	return false
}

// Variable is a named value. A nil Value makes it an unknown, described only
// by its Assumptions.
type Variable struct {
	Name   string
	Value  *Node
	Assume Assumptions
}

// NewUnknown returns an unknown variable with the given assumptions.
func NewUnknown(name string, a Assumptions) *Variable {
	return &Variable{Name: name, Assume: a}
}

// NewKnown returns a variable bound to value (ownership transfers).
func NewKnown(name string, value *Node) *Variable {
	return &Variable{Name: name, Value: value}
}

// IsKnown reports whether the variable has a value.
func (v *Variable) IsKnown() bool { return v.Value != nil }

// Function is a callable referenced by Function nodes. Concrete functions
// live outside this module; the kernel only asks them representational
// questions about a call with the given arguments.
type Function interface {
	Name() string
	Represents(p Property, args []*Node) bool
}

// Evaluator is optionally implemented by functions that can be evaluated on
// numeric arguments (used by Evaluate and Compare).
type Evaluator interface {
	Evaluate(args []number.Number) (number.Number, error)
}

// SimpleFunction is a declarative Function: it represents Props for every
// call and evaluates with Eval when set.
type SimpleFunction struct {
	FuncName string
	Props    []Property
	Eval     func(args []number.Number) (number.Number, error)
}

// Name returns FuncName.
func (f *SimpleFunction) Name() string { return f.FuncName }

// Represents reports whether p is one of Props.
func (f *SimpleFunction) Represents(p Property, _ []*Node) bool {
	for _, q := range f.Props {
		if q == p {
			return true
		}
	}
	return false
}

// Evaluate calls Eval, failing with ErrNotNumeric when it is unset.
func (f *SimpleFunction) Evaluate(args []number.Number) (number.Number, error) {
	if f.Eval == nil {
		return number.Number{}, ErrNotNumeric
	}
	return f.Eval(args)
}
