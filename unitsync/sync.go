// SPDX-License-Identifier: MIT

package unitsync

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvcas/expr"
	"github.com/katalvlaran/lvcas/number"
	"github.com/katalvlaran/lvcas/units"
)

// Sync rewrites the unit references of n into a minimal set of common
// units and reports whether n changed. On error n is unchanged.
func Sync(ctx context.Context, n *expr.Node, opts ...Option) (bool, error) {
	const op = "sync"
	o := gatherOptions(opts...)
	work := n.Clone()

	changed, col, err := absorb(ctx, work, o.maxRounds)
	if err != nil {
		return false, syncErrorf(op, err)
	}
	col.dedupe()
	col.dropRooted()

	targets := col.targets()
	for _, t := range targets {
		if expr.Aborted(ctx) {
			return false, expr.AbortError(ctx, op)
		}
		r, err := rewriteInto(work, t, targets, o.nonLinear)
		if err != nil {
			return false, syncErrorf(op, err)
		}
		changed = changed || r
	}
	if !changed {
		return false, nil
	}
	if err := work.Canonicalize(ctx); err != nil {
		return false, syncErrorf(op, err)
	}
	zerolog.Ctx(ctx).Debug().
		Str("component", "lvcas").
		Int("targets", len(targets)).
		Msg("unitsync: units synchronized")
	n.Set(work)
	return true, nil
}

// absorb replaces composites sharing members with directly referenced
// units by the product of their parts until none is left.
func absorb(ctx context.Context, n *expr.Node, maxRounds int) (bool, *collection, error) {
	changed := false
	for round := 0; ; round++ {
		if expr.Aborted(ctx) {
			return false, nil, expr.AbortError(ctx, "absorb")
		}
		col := collect(n)
		hit := col.absorbable()
		if len(hit) == 0 {
			return changed, col, nil
		}
		if round >= maxRounds {
			return false, nil, ErrFixpoint
		}
		var sites []*expr.Node
		n.Walk(func(v *expr.Node) bool {
			if v.Is(expr.KindUnit) {
				if c, ok := v.Unit().(*units.CompositeUnit); ok && slices.Contains(hit, c) {
					sites = append(sites, v)
				}
			}
			return true
		})
		for _, v := range sites {
			parts := expr.ExpandComposite(v.Unit().(*units.CompositeUnit))
			if p := v.Prefix(); p != nil {
				parts = expr.Product(expr.Num(p.Value), parts)
			}
			v.Set(parts)
		}
		changed = true
	}
}

// commonPrefix returns the prefix shared by every occurrence of u, nil when
// they differ.
func commonPrefix(n *expr.Node, u units.Unit) *units.Prefix {
	var (
		p    *units.Prefix
		seen bool
		same = true
	)
	n.Walk(func(v *expr.Node) bool {
		if v.Is(expr.KindUnit) && v.Unit() == u {
			if !seen {
				p, seen = v.Prefix(), true
			} else if v.Prefix() != p {
				same = false
			}
		}
		return same
	})
	if !same {
		return nil
	}
	return p
}

// prefixValue returns the scale of p, 1 for no prefix.
func prefixValue(p *units.Prefix) number.Number {
	if p == nil {
		return number.New(1)
	}
	return p.Value
}

// site is a unit occurrence to rewrite, with the numeric coefficient it
// multiplies when the conversion carries an offset.
type site struct {
	node *expr.Node
	unit *expr.Node
	coef number.Number
	conv units.Conversion
}

// rewriteInto converts every occurrence compatible with target that is not
// itself a target unit.
func rewriteInto(n *expr.Node, target units.Unit, targets []units.Unit, nonLinear bool) (bool, error) {
	pt := commonPrefix(n, target)
	skip := func(v *expr.Node) bool {
		if v.Unit() == target {
			return v.Prefix() == pt
		}
		return slices.Contains(targets, v.Unit())
	}

	var sites []site
	n.Walk(func(v *expr.Node) bool {
		if nonLinear {
			if s, ok := offsetSite(v, v == n, target, skip); ok {
				sites = append(sites, s)
				return false
			}
		}
		if !v.Is(expr.KindUnit) || skip(v) {
			return true
		}
		conv, err := units.Convert(v.Unit(), target)
		if err != nil || conv.NonLinear {
			return true
		}
		sites = append(sites, site{node: v, unit: v, coef: number.New(1), conv: conv})
		return true
	})

	for _, s := range sites {
		scale, err := prefixValue(pt).Pow(number.New(int64(s.conv.Exponent)))
		if err != nil {
			return false, err
		}
		value := s.conv.Multiplier.Mul(s.coef).Mul(prefixValue(s.unit.Prefix()))
		if s.conv.NonLinear {
			value = value.Add(s.conv.Offset)
		}
		if value, err = value.Div(scale); err != nil {
			return false, err
		}
		s.node.Set(expr.Product(
			expr.Num(value),
			expr.Pow(expr.PrefixedUnit(target, pt), expr.Int(int64(s.conv.Exponent))),
		))
	}
	return len(sites) > 0, nil
}

// offsetSite matches a number times a unit, or a unit at the root, whose
// conversion into target carries an offset.
func offsetSite(v *expr.Node, root bool, target units.Unit, skip func(*expr.Node) bool) (site, bool) {
	s := site{node: v, coef: number.New(1)}
	switch {
	case root && v.Is(expr.KindUnit):
		s.unit = v
	case v.Is(expr.KindMultiplication) && v.Len() == 2:
		a, b := v.Child(0), v.Child(1)
		if b.IsNumber() {
			a, b = b, a
		}
		if !a.IsNumber() || !b.Is(expr.KindUnit) {
			return site{}, false
		}
		s.unit, s.coef = b, a.Number()
	default:
		return site{}, false
	}
	if skip(s.unit) {
		return site{}, false
	}
	conv, err := units.Convert(s.unit.Unit(), target)
	if err != nil || !conv.NonLinear {
		return site{}, false
	}
	s.conv = conv
	return s, true
}
