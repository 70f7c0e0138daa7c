// SPDX-License-Identifier: MIT

package unitsync

import (
	"slices"

	"github.com/katalvlaran/lvcas/expr"
	"github.com/katalvlaran/lvcas/units"
)

// collection holds the distinct units referenced by a tree, in first-seen
// order, plus the base and alias members of every composite.
type collection struct {
	bases      []*units.BaseUnit
	aliases    []*units.AliasUnit
	composites []*units.CompositeUnit
	members    map[*units.CompositeUnit][]units.Unit
}

func collect(n *expr.Node) *collection {
	c := &collection{members: make(map[*units.CompositeUnit][]units.Unit)}
	n.Walk(func(v *expr.Node) bool {
		if v.Is(expr.KindUnit) {
			c.add(v.Unit())
		}
		return true
	})
	return c
}

func (c *collection) add(u units.Unit) {
	switch v := u.(type) {
	case *units.BaseUnit:
		if !slices.Contains(c.bases, v) {
			c.bases = append(c.bases, v)
		}
	case *units.AliasUnit:
		if !slices.Contains(c.aliases, v) {
			c.aliases = append(c.aliases, v)
		}
	case *units.CompositeUnit:
		if !slices.Contains(c.composites, v) {
			c.composites = append(c.composites, v)
			c.members[v] = membersOf(v, nil)
		}
	}
}

// membersOf appends the base and alias units of c, descending into nested
// composites.
func membersOf(c *units.CompositeUnit, dst []units.Unit) []units.Unit {
	for _, p := range c.Parts() {
		if inner, ok := p.Unit.(*units.CompositeUnit); ok {
			dst = membersOf(inner, dst)
			continue
		}
		if !slices.Contains(dst, p.Unit) {
			dst = append(dst, p.Unit)
		}
	}
	return dst
}

// absorbable returns the composites sharing a member with the collected
// base units or aliases.
func (c *collection) absorbable() []*units.CompositeUnit {
	var out []*units.CompositeUnit
	for _, comp := range c.composites {
		for _, m := range c.members[comp] {
			if c.referenced(m) {
				out = append(out, comp)
				break
			}
		}
	}
	return out
}

func (c *collection) referenced(u units.Unit) bool {
	switch v := u.(type) {
	case *units.BaseUnit:
		return slices.Contains(c.bases, v)
	case *units.AliasUnit:
		return slices.Contains(c.aliases, v)
	}
	return false
}

// dedupe reduces aliases sharing a root, two at a time. Of a pair where one
// derives from the other the more derived alias stays; otherwise both go
// and the root is collected.
func (c *collection) dedupe() {
	for i := 0; i < len(c.aliases); i++ {
		for j := i + 1; j < len(c.aliases); j++ {
			a, b := c.aliases[i], c.aliases[j]
			if a.Root() != b.Root() {
				continue
			}
			switch {
			case a.DerivesFrom(b):
				c.aliases = slices.Delete(c.aliases, j, j+1)
				j--
			case b.DerivesFrom(a):
				c.aliases = slices.Delete(c.aliases, i, i+1)
				i--
				j = len(c.aliases)
			default:
				c.aliases = slices.Delete(c.aliases, j, j+1)
				c.aliases = slices.Delete(c.aliases, i, i+1)
				c.add(a.Root())
				i--
				j = len(c.aliases)
			}
		}
	}
}

// dropRooted removes aliases whose root is a collected base unit or
// composite.
func (c *collection) dropRooted() {
	c.aliases = slices.DeleteFunc(c.aliases, func(a *units.AliasUnit) bool {
		switch r := a.Root().(type) {
		case *units.BaseUnit:
			return slices.Contains(c.bases, r)
		case *units.CompositeUnit:
			return slices.Contains(c.composites, r)
		}
		return false
	})
}

// targets lists the surviving units in rewrite order: composites, base
// units, aliases.
func (c *collection) targets() []units.Unit {
	out := make([]units.Unit, 0, len(c.composites)+len(c.bases)+len(c.aliases))
	for _, u := range c.composites {
		out = append(out, u)
	}
	for _, u := range c.bases {
		out = append(out, u)
	}
	for _, u := range c.aliases {
		out = append(out, u)
	}
	return out
}
