// SPDX-License-Identifier: MIT

package expr

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcas/number"
)

// Evaluate reduces n to a number using interval arithmetic for anything
// approximate. Known variables evaluate to their value, function calls to
// their cached value or through Evaluator. Trees containing unknowns,
// units, vectors or text fail with ErrNotNumeric.
func (n *Node) Evaluate(ctx context.Context) (number.Number, error) {
	if Aborted(ctx) {
		return number.Number{}, AbortError(ctx, "evaluate")
	}
	switch n.kind {
	case KindNumber:
		return n.num, nil
	case KindVariable:
		if n.variable.Value == nil {
			return number.Number{}, fmt.Errorf("evaluate %s: %w", n.variable.Name, ErrNotNumeric)
		}
		return n.variable.Value.Evaluate(ctx)
	case KindFunction:
		if n.cached != nil {
			return n.cached.Evaluate(ctx)
		}
		ev, ok := n.fn.(Evaluator)
		if !ok {
			return number.Number{}, fmt.Errorf("evaluate %s: %w", n.fn.Name(), ErrNotNumeric)
		}
		args, err := evaluateAll(ctx, n.children)
		if err != nil {
			return number.Number{}, err
		}
		return ev.Evaluate(args)
	case KindAddition:
		args, err := evaluateAll(ctx, n.children)
		if err != nil {
			return number.Number{}, err
		}
		sum := number.New(0)
		for _, a := range args {
			sum = sum.Add(a)
		}
		return sum, nil
	case KindMultiplication:
		args, err := evaluateAll(ctx, n.children)
		if err != nil {
			return number.Number{}, err
		}
		prod := number.New(1)
		for _, a := range args {
			prod = prod.Mul(a)
		}
		return prod, nil
	case KindPower:
		args, err := evaluateAll(ctx, n.children)
		if err != nil {
			return number.Number{}, err
		}
		return args[0].Pow(args[1])
	case KindComparison:
		args, err := evaluateAll(ctx, n.children)
		if err != nil {
			return number.Number{}, err
		}
		return evaluateComparison(n.op, args[0], args[1])
	}
	return number.Number{}, fmt.Errorf("evaluate %s: %w", n.kind, ErrNotNumeric)
}

func evaluateAll(ctx context.Context, nodes []*Node) ([]number.Number, error) {
	out := make([]number.Number, len(nodes))
	for i, c := range nodes {
		v, err := c.Evaluate(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// evaluateComparison yields 1 or 0 when the relation is decided.
func evaluateComparison(op ComparisonOp, a, b number.Number) (number.Number, error) {
	r := compareNumbers(a, b)
	var holds, decided bool
	switch op {
	case OpEquals:
		holds, decided = r == Equal, r == Equal || r == Less || r == Greater || r == NotEqual
	case OpNotEquals:
		holds, decided = r != Equal, r == Equal || r == Less || r == Greater || r == NotEqual
	case OpLess:
		holds, decided = r == Less, r == Less || r == Greater || r == Equal || r == EqualOrGreater
	case OpGreater:
		holds, decided = r == Greater, r == Less || r == Greater || r == Equal || r == EqualOrLess
	case OpEqualsLess:
		holds = r == Less || r == Equal || r == EqualOrLess
		decided = holds || r == Greater
	case OpEqualsGreater:
		holds = r == Greater || r == Equal || r == EqualOrGreater
		decided = holds || r == Less
	}
	if !decided {
		return number.Number{}, fmt.Errorf("evaluate %s: %w", op, ErrNotNumeric)
	}
	if holds {
		return number.New(1), nil
	}
	return number.New(0), nil
}
