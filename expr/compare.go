// SPDX-License-Identifier: MIT

package expr

import (
	"context"

	"github.com/katalvlaran/lvcas/number"
)

// Compare describes n relative to o. Numbers compare numerically. Other
// trees are compared through the sign of n − o: evaluated as an interval
// when possible, read from the Represents predicates otherwise.
func (n *Node) Compare(o *Node) ComparisonResult {
	if n.kind == KindNumber && o.kind == KindNumber {
		return compareNumbers(n.num, o.num)
	}
	if n.Equals(o, false, false) {
		return Equal
	}
	d := Sub(n.Clone(), o.Clone())
	if d.kind == KindNumber {
		return classify(d.num)
	}
	if v, err := d.Evaluate(context.Background()); err == nil {
		return classify(v)
	}
	switch {
	case d.Represents(PropPositive):
		return Greater
	case d.Represents(PropNegative):
		return Less
	case d.Represents(PropNonNegative):
		return EqualOrGreater
	case d.Represents(PropNonPositive):
		return EqualOrLess
	case d.Represents(PropNonZero):
		return NotEqual
	}
	return Unknown
}

func compareNumbers(a, b number.Number) ComparisonResult {
	if a.IsReal() != b.IsReal() {
		return Unknown
	}
	if c, ok := a.Cmp(b); ok {
		switch {
		case c < 0:
			return Less
		case c > 0:
			return Greater
		}
		return Equal
	}
	return classify(a.Sub(b))
}

// classify maps the sign of a difference to a result.
func classify(d number.Number) ComparisonResult {
	if !d.IsReal() {
		if d.IsNonZero() {
			return NotEqual
		}
		return Unknown
	}
	if s, ok := d.Sign(); ok {
		switch {
		case s > 0:
			return Greater
		case s < 0:
			return Less
		}
		return Equal
	}
	switch {
	case d.IsNonNegative():
		return EqualOrGreater
	case d.IsNonPositive():
		return EqualOrLess
	}
	return Unknown
}
