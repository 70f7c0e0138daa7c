// SPDX-License-Identifier: MIT

package units

import (
	"fmt"

	"github.com/katalvlaran/lvcas/number"
)

// Conversion relates two units: x from = (Multiplier·x + Offset) · into^Exponent.
type Conversion struct {
	Multiplier number.Number
	Exponent   int
	Offset     number.Number
	NonLinear  bool
}

// representation is u expressed as factor · Π base^exp (+ offset).
type representation struct {
	factor    number.Number
	offset    number.Number
	bases     map[*BaseUnit]int
	nonLinear bool
}

func represent(u Unit) (representation, error) {
	switch v := u.(type) {
	case *BaseUnit:
		return representation{factor: number.New(1), bases: map[*BaseUnit]int{v: 1}}, nil

	case *AliasUnit:
		inner, err := represent(v.first)
		if err != nil {
			return representation{}, err
		}
		fe, err := inner.factor.Pow(number.New(int64(v.exponent)))
		if err != nil {
			return representation{}, unitErrorf(v.name, err)
		}
		out := representation{factor: v.factor.Mul(fe), bases: scaleBases(inner.bases, v.exponent)}
		if !v.offset.IsZero() || inner.nonLinear {
			if v.exponent != 1 {
				return representation{}, unitErrorf(v.name, ErrNonLinearExponent)
			}
			// root = f1·(factor·x + offset) + o1
			out.offset = inner.factor.Mul(v.offset).Add(inner.offset)
			out.nonLinear = true
		}
		return out, nil

	case *CompositeUnit:
		// offsets do not survive multiplication: composites are linear
		out := representation{factor: number.New(1), bases: make(map[*BaseUnit]int)}
		for _, p := range v.parts {
			inner, err := represent(p.Unit)
			if err != nil {
				return representation{}, err
			}
			f := inner.factor
			if p.Prefix != nil {
				f = f.Mul(p.Prefix.Value)
			}
			fe, err := f.Pow(number.New(int64(p.Exponent)))
			if err != nil {
				return representation{}, unitErrorf(v.name, err)
			}
			out.factor = out.factor.Mul(fe)
			for b, e := range inner.bases {
				out.bases[b] += e * p.Exponent
				if out.bases[b] == 0 {
					delete(out.bases, b)
				}
			}
		}
		return out, nil
	}
	return representation{}, ErrUnknownUnit
}

func scaleBases(in map[*BaseUnit]int, k int) map[*BaseUnit]int {
	out := make(map[*BaseUnit]int, len(in))
	for b, e := range in {
		out[b] = e * k
	}
	return out
}

// dimensionRatio returns k such that from = k·into dimensionally.
func dimensionRatio(from, into map[*BaseUnit]int) (int, bool) {
	if len(from) != len(into) {
		return 0, false
	}
	if len(into) == 0 {
		return 1, true
	}
	k := 0
	for b, ei := range into {
		ef, ok := from[b]
		if !ok || ef%ei != 0 {
			return 0, false
		}
		r := ef / ei
		if k == 0 {
			k = r
		} else if r != k {
			return 0, false
		}
	}
	return k, k != 0
}

// Convert returns the Conversion from `from` into `into`.
// It fails with ErrIncompatible when the dimensions differ by anything other
// than a non-zero integer power.
func Convert(from, into Unit) (Conversion, error) {
	if from == into {
		return Conversion{Multiplier: number.New(1), Exponent: 1}, nil
	}
	rf, err := represent(from)
	if err != nil {
		return Conversion{}, err
	}
	ri, err := represent(into)
	if err != nil {
		return Conversion{}, err
	}
	k, ok := dimensionRatio(rf.bases, ri.bases)
	if !ok {
		return Conversion{}, fmt.Errorf("%s -> %s: %w", from.Name(), into.Name(), ErrIncompatible)
	}
	fik, err := ri.factor.Pow(number.New(int64(k)))
	if err != nil {
		return Conversion{}, err
	}
	mult, err := rf.factor.Div(fik)
	if err != nil {
		return Conversion{}, err
	}
	conv := Conversion{Multiplier: mult, Exponent: k}
	if rf.nonLinear || ri.nonLinear {
		if k != 1 {
			return Conversion{}, fmt.Errorf("%s -> %s: %w", from.Name(), into.Name(), ErrNonLinearExponent)
		}
		// into = (root − oi)/fi, root = ff·x + of
		off, err := rf.offset.Sub(ri.offset).Div(ri.factor)
		if err != nil {
			return Conversion{}, err
		}
		conv.Offset = off
		conv.NonLinear = !off.IsZero()
	}
	return conv, nil
}

// Compatible reports whether Convert(from, into) would succeed.
func Compatible(from, into Unit) bool {
	_, err := Convert(from, into)
	return err == nil
}
