// SPDX-License-Identifier: MIT

package expr

import (
	"time"

	"github.com/katalvlaran/lvcas/number"
	"github.com/katalvlaran/lvcas/units"
)

// Node is one node of an expression tree. A node exclusively owns its
// children: attaching a node transfers ownership, so callers Clone anything
// they keep using. The zero value is an Undefined node.
type Node struct {
	kind     Kind
	children []*Node

	num      number.Number
	text     string
	when     time.Time
	op       ComparisonOp
	fn       Function
	cached   *Node
	unit     units.Unit
	prefix   *units.Prefix
	plural   bool
	variable *Variable

	approx  bool
	prec    int // 0 = unlimited
	paren   bool
	protect bool
}

// ---------- Constructors ----------

// Num returns a Number node.
func Num(n number.Number) *Node {
	return &Node{kind: KindNumber, num: n, approx: n.IsApproximate(), prec: precOf(n)}
}

// Int returns the exact integer i.
func Int(i int64) *Node { return Num(number.New(i)) }

// Frac returns the exact fraction p/q.
func Frac(p, q int64) *Node { return Num(number.NewFrac(p, q)) }

// Float returns an approximate number.
func Float(f float64) *Node { return Num(number.NewFloat(f)) }

// Symbol returns a free-text symbol node.
func Symbol(s string) *Node { return &Node{kind: KindSymbol, text: s} }

// DateTime returns a date/time value node.
func DateTime(t time.Time) *Node { return &Node{kind: KindDateTime, when: t} }

// Var returns a reference to v.
func Var(v *Variable) *Node {
	n := &Node{kind: KindVariable, variable: v}
	if v.Value != nil {
		n.approx = v.Value.approx
		n.prec = v.Value.prec
	}
	return n
}

// Unit returns a reference to u without prefix.
func Unit(u units.Unit) *Node { return &Node{kind: KindUnit, unit: u} }

// PrefixedUnit returns a reference to u scaled by p.
func PrefixedUnit(u units.Unit, p *units.Prefix) *Node {
	return &Node{kind: KindUnit, unit: u, prefix: p}
}

// Call returns a Function node applying f to args.
func Call(f Function, args ...*Node) *Node {
	n := &Node{kind: KindFunction, fn: f, children: args}
	n.refreshFlags()
	return n
}

// Vector returns a Vector node of elems.
func Vector(elems ...*Node) *Node {
	n := &Node{kind: KindVector, children: elems}
	n.refreshFlags()
	return n
}

// MatrixOf returns a Vector of row Vectors.
func MatrixOf(rows ...[]*Node) *Node {
	rs := make([]*Node, len(rows))
	for i, r := range rows {
		rs[i] = Vector(r...)
	}
	return Vector(rs...)
}

// Comparison returns the Comparison node "a op b".
func Comparison(a *Node, op ComparisonOp, b *Node) *Node {
	n := &Node{kind: KindComparison, op: op, children: []*Node{a, b}}
	n.refreshFlags()
	return n
}

// Logical returns a logical or bitwise node of the given kind.
func Logical(kind Kind, operands ...*Node) *Node {
	n := &Node{kind: kind, children: operands}
	n.refreshFlags()
	return n
}

// Undefined returns an Undefined node.
func Undefined() *Node { return &Node{kind: KindUndefined} }

// AbortedNode returns the placeholder left where a computation was cancelled.
func AbortedNode() *Node { return &Node{kind: KindAborted} }

func precOf(n number.Number) int {
	if p := n.Precision(); p > 0 {
		return p
	}
	return 0
}

func minPrec(a, b int) int {
	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	}
	return min(a, b)
}

// ---------- Accessors ----------

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// Is reports whether n has kind k.
func (n *Node) Is(k Kind) bool { return n.kind == k }

// Len returns the number of children.
func (n *Node) Len() int { return len(n.children) }

// Child returns child i (0-based). It panics when i is out of range.
func (n *Node) Child(i int) *Node { return n.children[i] }

// Children returns a copy of the child slice (the nodes are shared).
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Number returns the value of a Number node.
func (n *Node) Number() number.Number { return n.num }

// SymbolText returns the text of a Symbol node.
func (n *Node) SymbolText() string { return n.text }

// Time returns the value of a DateTime node.
func (n *Node) Time() time.Time { return n.when }

// Operator returns the operator of a Comparison node.
func (n *Node) Operator() ComparisonOp { return n.op }

// Function returns the callee of a Function node.
func (n *Node) Function() Function { return n.fn }

// Unit returns the unit of a Unit node.
func (n *Node) Unit() units.Unit { return n.unit }

// Prefix returns the prefix of a Unit node, or nil.
func (n *Node) Prefix() *units.Prefix { return n.prefix }

// IsPlural reports the plural display flag of a Unit node.
func (n *Node) IsPlural() bool { return n.plural }

// SetPlural sets the plural display flag.
func (n *Node) SetPlural(p bool) { n.plural = p }

// Variable returns the referenced variable of a Variable node.
func (n *Node) Variable() *Variable { return n.variable }

// CachedValue returns a clone of a Function node's cached value, or nil.
func (n *Node) CachedValue() *Node {
	if n.cached == nil {
		return nil
	}
	return n.cached.Clone()
}

// SetCachedValue stores v (ownership transfers) as the function's value.
func (n *Node) SetCachedValue(v *Node) {
	n.cached = v
	if v != nil {
		n.absorbFlags(v)
	}
}

// IsApproximate reports the approximate flag.
func (n *Node) IsApproximate() bool { return n.approx }

// SetApproximate forces the approximate flag. Setting it propagates to the
// node only; ancestors pick it up when they next absorb this child.
func (n *Node) SetApproximate(a bool) { n.approx = a }

// Precision returns the precision in significant digits, −1 if unlimited.
func (n *Node) Precision() int {
	if n.prec == 0 {
		return -1
	}
	return n.prec
}

// SetPrecision sets the precision (p ≤ 0 clears it).
func (n *Node) SetPrecision(p int) {
	if p < 0 {
		p = 0
	}
	n.prec = p
}

// InParentheses reports the display flag set by the parser.
func (n *Node) InParentheses() bool { return n.paren }

// SetInParentheses sets the parentheses display flag.
func (n *Node) SetInParentheses(p bool) { n.paren = p }

// IsProtected reports whether canonical merging skips this node.
func (n *Node) IsProtected() bool { return n.protect }

// SetProtected marks n as exempt from canonical merging.
func (n *Node) SetProtected(p bool) { n.protect = p }

// IsNumber reports whether n is a Number node.
func (n *Node) IsNumber() bool { return n.kind == KindNumber }

// IsZero reports whether n is the number 0.
func (n *Node) IsZero() bool { return n.kind == KindNumber && n.num.IsZero() }

// IsOne reports whether n is the exact number 1.
func (n *Node) IsOne() bool { return n.kind == KindNumber && n.num.IsOne() }

// IsMinusOne reports whether n is the exact number −1.
func (n *Node) IsMinusOne() bool { return n.kind == KindNumber && n.num.IsMinusOne() }

// ---------- Structure mutation ----------

// refreshFlags recomputes approx/prec from the direct children, which
// already satisfy the invariant.
func (n *Node) refreshFlags() {
	switch n.kind {
	case KindNumber:
		n.approx = n.num.IsApproximate()
		n.prec = precOf(n.num)
		return
	case KindVariable:
		if n.variable != nil && n.variable.Value != nil {
			n.approx = n.variable.Value.approx
			n.prec = n.variable.Value.prec
		}
		return
	}
	approx, prec := false, 0
	for _, c := range n.children {
		approx = approx || c.approx
		prec = minPrec(prec, c.prec)
	}
	if n.cached != nil {
		approx = approx || n.cached.approx
		prec = minPrec(prec, n.cached.prec)
	}
	n.approx, n.prec = approx, prec
}

// absorbFlags worsens n's flags by c's.
func (n *Node) absorbFlags(c *Node) {
	n.approx = n.approx || c.approx
	n.prec = minPrec(n.prec, c.prec)
}

// AppendChild attaches c as the last child.
func (n *Node) AppendChild(c *Node) {
	n.children = append(n.children, c)
	n.absorbFlags(c)
}

// InsertChild attaches c at index i (0 ≤ i ≤ Len).
func (n *Node) InsertChild(i int, c *Node) {
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	n.absorbFlags(c)
}

// SetChild replaces child i with c.
func (n *Node) SetChild(i int, c *Node) {
	n.children[i] = c
	n.refreshFlags()
}

// DeleteChild detaches child i and returns it.
func (n *Node) DeleteChild(i int) *Node {
	c := n.children[i]
	n.children = append(n.children[:i], n.children[i+1:]...)
	n.refreshFlags()
	return c
}

// Set replaces the contents of n with those of o, taking ownership of o.
// Display flags of n (parentheses, protection) are kept.
func (n *Node) Set(o *Node) {
	if n == o {
		return
	}
	paren, protect := n.paren, n.protect
	*n = *o
	n.paren, n.protect = paren || o.paren, protect || o.protect
}

// Clone returns a deep copy of n. Referenced variables, functions and units
// are shared, not copied.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.children != nil {
		c.children = make([]*Node, len(n.children))
		for i, ch := range n.children {
			c.children[i] = ch.Clone()
		}
	}
	c.cached = n.cached.Clone()
	return &c
}

// Transform turns n into kind(n, operands...), taking ownership of operands.
func (n *Node) Transform(kind Kind, operands ...*Node) {
	old := new(Node)
	*old = *n
	*n = Node{kind: kind, children: append([]*Node{old}, operands...)}
	n.refreshFlags()
}

// TransformInPlace appends operands to n when n already has the associative
// kind; otherwise it behaves like Transform. The caller asserts that n is
// not shared.
func (n *Node) TransformInPlace(kind Kind, operands ...*Node) {
	if n.kind == kind && kind.isAssociative() && !n.protect {
		for _, o := range operands {
			if o.kind == kind && !o.protect {
				for _, c := range o.children {
					n.AppendChild(c)
				}
				continue
			}
			n.AppendChild(o)
		}
		return
	}
	n.Transform(kind, operands...)
}

// TransformComparison turns n into the comparison "n op other".
func (n *Node) TransformComparison(op ComparisonOp, other *Node) {
	n.Transform(KindComparison, other)
	n.op = op
}
