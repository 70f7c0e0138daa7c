// SPDX-License-Identifier: MIT

package matrix

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvcas/expr"
)

const msgSingular = "inverse: the matrix is singular"

// Inverse replaces m by m⁻¹. Numeric matrices are inverted by Gauss–Jordan
// elimination against the identity; symbolic ones by adjoint/determinant.
// A singular matrix is reported through the context logger and returns
// ErrSingular. On failure m is unchanged.
func Inverse(ctx context.Context, m *expr.Node, opts ...Option) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	inv, err := inverse(ctx, m, o)
	if err != nil {
		if errors.Is(err, ErrSingular) {
			expr.Report(ctx, true, msgSingular)
		}
		return matrixErrorf(opInverse, err)
	}
	m.Set(inv)

	return nil
}

func inverse(ctx context.Context, m *expr.Node, o Options) (*expr.Node, error) {
	if d, ok := DenseOf(m); ok {
		inv, err := d.inverse(ctx, o.pivoting)
		if err != nil {
			return nil, err
		}
		return inv.Node(), nil
	}

	det, err := determinant(ctx, m, o)
	if err != nil {
		return nil, err
	}
	if err := det.Expand(ctx); err != nil {
		return nil, err
	}
	if det.IsZero() {
		return nil, ErrSingular
	}
	adj, err := adjoint(ctx, m, o)
	if err != nil {
		return nil, err
	}
	n := Rows(m)

	return build(n, n, func(i, j int) *expr.Node {
		return expr.Product(entry(adj, i, j).Clone(), expr.Pow(det.Clone(), expr.Int(-1)))
	}), nil
}
