// SPDX-License-Identifier: MIT

package units

import (
	"github.com/katalvlaran/lvcas/number"
)

// Kind classifies a Unit.
type Kind uint8

const (
	// KindBase marks an atomic unit.
	KindBase Kind = iota
	// KindAlias marks a unit defined by a relation to another unit.
	KindAlias
	// KindComposite marks a product of other units.
	KindComposite
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindAlias:
		return "alias"
	case KindComposite:
		return "composite"
	}
	return "unknown"
}

// Unit is implemented by *BaseUnit, *AliasUnit and *CompositeUnit only.
// Units are compared by identity.
type Unit interface {
	Name() string
	Kind() Kind
	sealed()
}

// Prefix is a named multiplicative scale such as kilo (1000).
type Prefix struct {
	Name   string
	Symbol string
	Value  number.Number
}

// BaseUnit is an atomic unit.
type BaseUnit struct {
	name string
}

// NewBase returns a new base unit.
func NewBase(name string) *BaseUnit { return &BaseUnit{name: name} }

// Name returns the unit name.
func (u *BaseUnit) Name() string { return u.name }

// Kind returns KindBase.
func (u *BaseUnit) Kind() Kind { return KindBase }

func (u *BaseUnit) sealed() {}

// AliasUnit relates itself to First: x alias = (Factor·x + Offset)·First^Exponent.
type AliasUnit struct {
	name        string
	first       Unit
	factor      number.Number
	offset      number.Number
	exponent    int
	mixWithBase int
}

// AliasOption configures optional AliasUnit fields.
type AliasOption func(*AliasUnit)

// WithOffset makes the alias non-linear with the given offset.
func WithOffset(offset number.Number) AliasOption {
	return func(a *AliasUnit) { a.offset = offset }
}

// WithMixWithBase sets the display directive for mixed-unit output
// (e.g. "1 hour + 30 minute"); it does not affect conversion.
func WithMixWithBase(priority int) AliasOption {
	return func(a *AliasUnit) { a.mixWithBase = priority }
}

// NewAlias returns an alias of first. An exponent of 0 is treated as 1.
func NewAlias(name string, first Unit, factor number.Number, exponent int, opts ...AliasOption) (*AliasUnit, error) {
	if exponent == 0 {
		exponent = 1
	}
	a := &AliasUnit{name: name, first: first, factor: factor, exponent: exponent}
	for _, opt := range opts {
		opt(a)
	}
	if !a.offset.IsZero() && a.exponent != 1 {
		return nil, unitErrorf(name, ErrNonLinearExponent)
	}
	if first == nil {
		return nil, unitErrorf(name, ErrUnknownUnit)
	}
	return a, nil
}

// Name returns the unit name.
func (a *AliasUnit) Name() string { return a.name }

// Kind returns KindAlias.
func (a *AliasUnit) Kind() Kind { return KindAlias }

func (a *AliasUnit) sealed() {}

// First returns the unit this alias is defined in terms of.
func (a *AliasUnit) First() Unit { return a.first }

// Factor returns the linear factor of the relation.
func (a *AliasUnit) Factor() number.Number { return a.factor }

// Offset returns the additive offset (zero for linear aliases).
func (a *AliasUnit) Offset() number.Number { return a.offset }

// Exponent returns the exponent applied to First.
func (a *AliasUnit) Exponent() int { return a.exponent }

// MixWithBase returns the mixed-output display directive (0 = none).
func (a *AliasUnit) MixWithBase() int { return a.mixWithBase }

// IsNonLinear reports whether this alias, or any alias it derives from, has an offset.
func (a *AliasUnit) IsNonLinear() bool {
	for cur := Unit(a); cur != nil; {
		al, ok := cur.(*AliasUnit)
		if !ok {
			return false
		}
		if !al.offset.IsZero() {
			return true
		}
		cur = al.first
	}
	return false
}

// Root follows the alias chain to its first non-alias unit.
func (a *AliasUnit) Root() Unit {
	var cur Unit = a
	for {
		al, ok := cur.(*AliasUnit)
		if !ok {
			return cur
		}
		cur = al.first
	}
}

// RootExponent is the product of exponents along the chain to Root.
func (a *AliasUnit) RootExponent() int {
	e := 1
	var cur Unit = a
	for {
		al, ok := cur.(*AliasUnit)
		if !ok {
			return e
		}
		e *= al.exponent
		cur = al.first
	}
}

// DerivesFrom reports whether u appears in this alias's chain (u ≠ a).
func (a *AliasUnit) DerivesFrom(u Unit) bool {
	for cur := a.first; cur != nil; {
		if cur == u {
			return true
		}
		al, ok := cur.(*AliasUnit)
		if !ok {
			return false
		}
		cur = al.first
	}
	return false
}

// Part is one factor of a CompositeUnit.
type Part struct {
	Unit     Unit
	Exponent int
	Prefix   *Prefix
}

// CompositeUnit is an ordered product of parts.
type CompositeUnit struct {
	name  string
	parts []Part
}

// NewComposite returns a composite of parts. Zero exponents are treated as 1.
func NewComposite(name string, parts ...Part) (*CompositeUnit, error) {
	c := &CompositeUnit{name: name, parts: make([]Part, 0, len(parts))}
	for _, p := range parts {
		if p.Unit == nil {
			return nil, unitErrorf(name, ErrUnknownUnit)
		}
		if p.Exponent == 0 {
			p.Exponent = 1
		}
		c.parts = append(c.parts, p)
	}
	return c, nil
}

// Name returns the unit name.
func (c *CompositeUnit) Name() string { return c.name }

// Kind returns KindComposite.
func (c *CompositeUnit) Kind() Kind { return KindComposite }

func (c *CompositeUnit) sealed() {}

// Parts returns a copy of the parts.
func (c *CompositeUnit) Parts() []Part {
	out := make([]Part, len(c.parts))
	copy(out, c.parts)
	return out
}

// BaseUnits returns every base unit reachable from u, in first-seen order.
func BaseUnits(u Unit) []*BaseUnit {
	var out []*BaseUnit
	seen := make(map[*BaseUnit]bool)
	var visit func(Unit)
	visit = func(u Unit) {
		switch v := u.(type) {
		case *BaseUnit:
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		case *AliasUnit:
			visit(v.first)
		case *CompositeUnit:
			for _, p := range v.parts {
				visit(p.Unit)
			}
		}
	}
	visit(u)
	return out
}

// Contains reports whether target occurs in u's definition (u itself included).
func Contains(u, target Unit) bool {
	if u == target {
		return true
	}
	switch v := u.(type) {
	case *AliasUnit:
		return Contains(v.first, target)
	case *CompositeUnit:
		for _, p := range v.parts {
			if Contains(p.Unit, target) {
				return true
			}
		}
	}
	return false
}
