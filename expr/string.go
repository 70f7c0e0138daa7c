// SPDX-License-Identifier: MIT

package expr

import (
	"strings"
	"time"
)

// String renders n in a plain prefix-free notation for logs and test
// failures. It is not a formatter: no operator precedence is recovered
// beyond parenthesising composite operands.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	switch n.kind {
	case KindNumber:
		sb.WriteString(n.num.String())
	case KindSymbol:
		sb.WriteString(`"` + n.text + `"`)
	case KindDateTime:
		sb.WriteString(n.when.Format(time.RFC3339))
	case KindVariable:
		sb.WriteString(n.variable.Name)
	case KindUnit:
		if n.prefix != nil {
			sb.WriteString(n.prefix.Symbol)
		}
		sb.WriteString(n.unit.Name())
	case KindFunction:
		sb.WriteString(n.fn.Name())
		n.writeList(sb, "(", ", ", ")")
	case KindVector:
		n.writeList(sb, "[", ", ", "]")
	case KindAddition:
		n.writeOperands(sb, " + ")
	case KindMultiplication:
		n.writeOperands(sb, "*")
	case KindPower:
		n.writeOperands(sb, "^")
	case KindComparison:
		n.writeOperands(sb, " "+n.op.String()+" ")
	case KindLogicalAnd:
		n.writeOperands(sb, " && ")
	case KindLogicalOr:
		n.writeOperands(sb, " || ")
	case KindLogicalXor:
		n.writeOperands(sb, " xor ")
	case KindBitwiseAnd:
		n.writeOperands(sb, " & ")
	case KindBitwiseOr:
		n.writeOperands(sb, " | ")
	case KindBitwiseXor:
		n.writeOperands(sb, " ^^ ")
	case KindLogicalNot:
		sb.WriteString("!")
		n.writeOperands(sb, "")
	case KindBitwiseNot:
		sb.WriteString("~")
		n.writeOperands(sb, "")
	case KindUndefined:
		sb.WriteString("undefined")
	case KindAborted:
		sb.WriteString("aborted")
	}
}

func (n *Node) writeList(sb *strings.Builder, open, sep, closing string) {
	sb.WriteString(open)
	for i, c := range n.children {
		if i > 0 {
			sb.WriteString(sep)
		}
		c.write(sb)
	}
	sb.WriteString(closing)
}

func (n *Node) writeOperands(sb *strings.Builder, sep string) {
	for i, c := range n.children {
		if i > 0 {
			sb.WriteString(sep)
		}
		wrap := len(c.children) > 0 && c.kind != KindFunction && c.kind != KindVector
		if c.kind == KindNumber && !c.num.IsReal() {
			wrap = true
		}
		if wrap {
			sb.WriteString("(")
		}
		c.write(sb)
		if wrap {
			sb.WriteString(")")
		}
	}
}
