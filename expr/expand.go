// SPDX-License-Identifier: MIT

package expr

import "context"

const (
	// MaxExpandPower is the largest integer power of a sum that Expand multiplies out.
	MaxExpandPower = 1000

	// MaxExpandTerms bounds the number of terms an expansion may produce.
	MaxExpandTerms = 1 << 16
)

// Expand multiplies out products of sums and non-negative integer powers
// of sums, bottom-up. On error n is unchanged.
func (n *Node) Expand(ctx context.Context) error {
	out, err := expand(ctx, n.Clone())
	if err != nil {
		return err
	}
	n.Set(out)
	return nil
}

func expand(ctx context.Context, n *Node) (*Node, error) {
	if Aborted(ctx) {
		return nil, AbortError(ctx, "expand")
	}
	if n.protect || len(n.children) == 0 {
		return n, nil
	}
	for i, c := range n.children {
		e, err := expand(ctx, c)
		if err != nil {
			return nil, err
		}
		n.children[i] = e
	}
	switch n.kind {
	case KindAddition:
		return Sum(n.children...), nil
	case KindMultiplication:
		return distribute(ctx, n.children)
	case KindPower:
		base, exp := n.children[0], n.children[1]
		if base.kind == KindAddition && !base.protect && exp.kind == KindNumber {
			if k, ok := exp.num.Int64(); ok && k >= 0 && k <= MaxExpandPower {
				factors := make([]*Node, k)
				for i := range factors {
					factors[i] = base.Clone()
				}
				return distribute(ctx, factors)
			}
		}
		return Pow(base, exp), nil
	}
	n.refreshFlags()
	return n, nil
}

// distribute multiplies factors term by term, keeping their order.
func distribute(ctx context.Context, factors []*Node) (*Node, error) {
	terms := []*Node{Int(1)}
	for _, f := range factors {
		if Aborted(ctx) {
			return nil, AbortError(ctx, "expand")
		}
		fterms := []*Node{f}
		if f.kind == KindAddition && !f.protect {
			fterms = f.children
		}
		if len(terms)*len(fterms) > MaxExpandTerms {
			return nil, ErrTooLarge
		}
		next := make([]*Node, 0, len(terms)*len(fterms))
		for _, t := range terms {
			for _, u := range fterms {
				next = append(next, Product(t.Clone(), u.Clone()))
			}
		}
		terms = next
	}
	return Sum(terms...), nil
}

// Canonicalize rebuilds n bottom-up through Sum, Product and Pow, so that
// a tree assembled with Transform or edited in place regains canonical
// form. On error n is unchanged.
func (n *Node) Canonicalize(ctx context.Context) error {
	out, err := rebuild(ctx, n.Clone())
	if err != nil {
		return err
	}
	n.Set(out)
	return nil
}

func rebuild(ctx context.Context, n *Node) (*Node, error) {
	if Aborted(ctx) {
		return nil, AbortError(ctx, "canonicalize")
	}
	for i, c := range n.children {
		r, err := rebuild(ctx, c)
		if err != nil {
			return nil, err
		}
		n.children[i] = r
	}
	if n.protect {
		n.refreshFlags()
		return n, nil
	}
	switch n.kind {
	case KindAddition:
		return Sum(n.children...), nil
	case KindMultiplication:
		return Product(n.children...), nil
	case KindPower:
		return Pow(n.children[0], n.children[1]), nil
	}
	n.refreshFlags()
	return n, nil
}
