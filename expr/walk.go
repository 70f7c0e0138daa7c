// SPDX-License-Identifier: MIT

package expr

import "github.com/katalvlaran/lvcas/units"

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Contains reports whether sub occurs in n as a subtree.
func (n *Node) Contains(sub *Node) bool {
	found := false
	n.Walk(func(c *Node) bool {
		if found {
			return false
		}
		if c.Equals(sub, false, false) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Replace substitutes a clone of to for every occurrence of from and
// reports whether anything changed. The result is not re-canonicalized.
func (n *Node) Replace(from, to *Node) bool {
	if n.Equals(from, false, false) {
		n.Set(to.Clone())
		return true
	}
	changed := false
	for _, c := range n.children {
		if c.Replace(from, to) {
			changed = true
		}
	}
	if changed {
		n.refreshFlags()
	}
	return changed
}

// ExpandComposite returns the product of the parts of c, each a prefixed
// unit raised to its exponent.
func ExpandComposite(c *units.CompositeUnit) *Node {
	parts := c.Parts()
	factors := make([]*Node, 0, len(parts))
	for _, p := range parts {
		factors = append(factors, Pow(PrefixedUnit(p.Unit, p.Prefix), Int(int64(p.Exponent))))
	}
	return Product(factors...)
}
