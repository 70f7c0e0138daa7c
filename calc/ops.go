// SPDX-License-Identifier: MIT

package calc

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvcas/expr"
	"github.com/katalvlaran/lvcas/matrix"
	"github.com/katalvlaran/lvcas/number"
	"github.com/katalvlaran/lvcas/poly"
	"github.com/katalvlaran/lvcas/unitsync"
)

// run executes fn with the calculator's logger attached to ctx and logs
// failures other than cancellation at debug level.
func (c *Calculator) run(ctx context.Context, op string, fn func(context.Context) error) error {
	ctx = c.Context(ctx)
	err := fn(ctx)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		c.log.Debug().Str("op", op).Err(err).Msg("calc: operation failed")
	}
	return err
}

// Expand distributes products over sums in n, in place.
func (c *Calculator) Expand(ctx context.Context, n *expr.Node) error {
	return c.run(ctx, "expand", n.Expand)
}

// Canonicalize restores canonical form of n, in place.
func (c *Calculator) Canonicalize(ctx context.Context, n *expr.Node) error {
	return c.run(ctx, "canonicalize", n.Canonicalize)
}

// Evaluate returns the numeric value of n.
func (c *Calculator) Evaluate(ctx context.Context, n *expr.Node) (v number.Number, err error) {
	err = c.run(ctx, "evaluate", func(ctx context.Context) error {
		v, err = n.Evaluate(ctx)
		return err
	})
	return v, err
}

// Determinant returns det(m) as a new tree.
func (c *Calculator) Determinant(ctx context.Context, m *expr.Node) (d *expr.Node, err error) {
	err = c.run(ctx, "determinant", func(ctx context.Context) error {
		d, err = matrix.Determinant(ctx, m, c.matrixOpts...)
		return err
	})
	return d, err
}

// Permanent returns the permanent of m as a new tree.
func (c *Calculator) Permanent(ctx context.Context, m *expr.Node) (p *expr.Node, err error) {
	err = c.run(ctx, "permanent", func(ctx context.Context) error {
		p, err = matrix.Permanent(ctx, m, c.matrixOpts...)
		return err
	})
	return p, err
}

// Cofactor returns the (r, col) cofactor of m.
func (c *Calculator) Cofactor(ctx context.Context, m *expr.Node, r, col int) (f *expr.Node, err error) {
	err = c.run(ctx, "cofactor", func(ctx context.Context) error {
		f, err = matrix.Cofactor(ctx, m, r, col, c.matrixOpts...)
		return err
	})
	return f, err
}

// Adjoint replaces m by its adjugate.
func (c *Calculator) Adjoint(ctx context.Context, m *expr.Node) error {
	return c.run(ctx, "adjoint", func(ctx context.Context) error {
		return matrix.Adjoint(ctx, m, c.matrixOpts...)
	})
}

// Inverse replaces m by its inverse. Singular matrices are reported as a
// warning and leave m unchanged.
func (c *Calculator) Inverse(ctx context.Context, m *expr.Node) error {
	return c.run(ctx, "inverse", func(ctx context.Context) error {
		return matrix.Inverse(ctx, m, c.matrixOpts...)
	})
}

// Eliminate brings m to row echelon form in place.
func (c *Calculator) Eliminate(ctx context.Context, m *expr.Node) error {
	return c.run(ctx, "eliminate", func(ctx context.Context) error {
		return matrix.GaussianElimination(ctx, m, c.matrixOpts...)
	})
}

// Rank returns the rank of m.
func (c *Calculator) Rank(ctx context.Context, m *expr.Node) (r int, err error) {
	err = c.run(ctx, "rank", func(ctx context.Context) error {
		r, err = matrix.Rank(ctx, m, c.matrixOpts...)
		return err
	})
	return r, err
}

// LongDivision divides n by d as polynomials in x.
func (c *Calculator) LongDivision(ctx context.Context, n, d, x *expr.Node) (q, r *expr.Node, err error) {
	err = c.run(ctx, "long division", func(ctx context.Context) error {
		q, r, err = poly.LongDivision(ctx, n, d, x)
		return err
	})
	return q, r, err
}

// GCD returns the greatest common monomial divisor of a and b.
func (c *Calculator) GCD(ctx context.Context, a, b *expr.Node) (g *expr.Node, err error) {
	err = c.run(ctx, "gcd", func(ctx context.Context) error {
		g, err = poly.GCD(ctx, a, b)
		return err
	})
	return g, err
}

// Content returns the content of p in x.
func (c *Calculator) Content(ctx context.Context, p, x *expr.Node) (g *expr.Node, err error) {
	err = c.run(ctx, "content", func(ctx context.Context) error {
		g, err = poly.Content(ctx, p, x)
		return err
	})
	return g, err
}

// PrimitivePart returns p divided by its content in x.
func (c *Calculator) PrimitivePart(ctx context.Context, p, x *expr.Node) (pp *expr.Node, err error) {
	err = c.run(ctx, "primitive part", func(ctx context.Context) error {
		pp, err = poly.PrimitivePart(ctx, p, x)
		return err
	})
	return pp, err
}

// DecomposeFractions rewrites n as partial fractions in x, in place.
func (c *Calculator) DecomposeFractions(ctx context.Context, n, x *expr.Node) error {
	return c.run(ctx, "decompose fractions", func(ctx context.Context) error {
		return poly.DecomposeFractions(ctx, n, x)
	})
}

// SyncUnits expresses compatible units of n in common units, in place.
func (c *Calculator) SyncUnits(ctx context.Context, n *expr.Node) (changed bool, err error) {
	err = c.run(ctx, "sync units", func(ctx context.Context) error {
		changed, err = unitsync.Sync(ctx, n, c.syncOpts...)
		return err
	})
	return changed, err
}
