// SPDX-License-Identifier: MIT

package matrix

import (
	"context"
	"slices"

	"github.com/katalvlaran/lvcas/expr"
)

// maxExpansionRows is the largest order the memoized expansion can key by
// a row bitmask.
const maxExpansionRows = 64

// Determinant returns det(m) as a new tree; m is only read.
//
// Implementation:
//   - Orders 1 to 3: direct arithmetic (Sarrus rule for 3).
//   - Larger numeric matrices: Gaussian elimination on a Dense workspace
//     (partial pivoting unless disabled), product of the diagonal, sign
//     corrected for row swaps.
//   - Larger symbolic matrices: columns are reordered by ascending zero
//     count, the permutation sign is applied, and the Laplace expansion runs
//     with partial minors memoized by the set of rows they use.
//
// Errors:
//   - ErrNotMatrix, ErrNonSquare, ErrCacheLimit, cancellation.
func Determinant(ctx context.Context, m *expr.Node, opts ...Option) (*expr.Node, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDeterminant, err)
	}
	d, err := determinant(ctx, m, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opDeterminant, err)
	}

	return d, nil
}

func determinant(ctx context.Context, m *expr.Node, o Options) (*expr.Node, error) {
	if expr.Aborted(ctx) {
		return nil, expr.AbortError(ctx, opDeterminant)
	}
	e := func(i, j int) *expr.Node { return entry(m, i, j).Clone() }
	switch Rows(m) {
	case 1:
		return e(0, 0), nil
	case 2:
		return expr.Sub(expr.Product(e(0, 0), e(1, 1)), expr.Product(e(0, 1), e(1, 0))), nil
	case 3:
		return expr.Sum(
			expr.Product(e(0, 0), e(1, 1), e(2, 2)),
			expr.Product(e(0, 1), e(1, 2), e(2, 0)),
			expr.Product(e(0, 2), e(1, 0), e(2, 1)),
			expr.Neg(expr.Product(e(0, 2), e(1, 1), e(2, 0))),
			expr.Neg(expr.Product(e(0, 1), e(1, 0), e(2, 2))),
			expr.Neg(expr.Product(e(0, 0), e(1, 2), e(2, 1))),
		), nil
	}
	if d, ok := DenseOf(m); ok {
		v, err := d.determinant(ctx, o.pivoting)
		if err != nil {
			return nil, err
		}
		return expr.Num(v), nil
	}

	order, sign := columnOrder(m)
	det, err := newExpansion(m, order, true, o.cacheLimit).run(ctx)
	if err != nil {
		return nil, err
	}
	if sign < 0 {
		det = expr.Neg(det)
	}

	return det, nil
}

// Permanent returns the permanent of m: the minor expansion without signs.
//
// Errors:
//   - ErrNotMatrix, ErrNonSquare, ErrCacheLimit, cancellation.
func Permanent(ctx context.Context, m *expr.Node, opts ...Option) (*expr.Node, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPermanent, err)
	}
	o := gatherOptions(opts...)
	// the permanent is invariant under column permutations
	order, _ := columnOrder(m)
	p, err := newExpansion(m, order, false, o.cacheLimit).run(ctx)
	if err != nil {
		return nil, matrixErrorf(opPermanent, err)
	}

	return p, nil
}

// columnOrder returns the column indices sorted by ascending number of zero
// entries (stable) and the sign of that permutation.
func columnOrder(m *expr.Node) (order []int, sign int) {
	n := Cols(m)
	zeros := make([]int, n)
	for i := 0; i < Rows(m); i++ {
		for j := 0; j < n; j++ {
			if entry(m, i, j).IsZero() {
				zeros[j]++
			}
		}
	}
	order = make([]int, n)
	for j := range order {
		order[j] = j
	}
	slices.SortStableFunc(order, func(a, b int) int { return zeros[a] - zeros[b] })

	sign = 1
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if order[i] > order[j] {
				sign = -sign
			}
		}
	}

	return order, sign
}

// expansion memoizes partial minors of a square matrix. A partial minor
// uses the columns order[col:] and the rows in mask, where
// col = n − popcount(mask), so the mask alone is the key.
type expansion struct {
	m      *expr.Node
	order  []int
	signed bool
	limit  int
	cache  map[uint64]*expr.Node
}

func newExpansion(m *expr.Node, order []int, signed bool, limit int) *expansion {
	return &expansion{m: m, order: order, signed: signed, limit: limit, cache: make(map[uint64]*expr.Node)}
}

func (e *expansion) run(ctx context.Context) (*expr.Node, error) {
	n := Rows(e.m)
	if n > maxExpansionRows {
		return nil, ErrCacheLimit
	}
	var mask uint64
	for i := 0; i < n; i++ {
		mask |= 1 << uint(i)
	}
	v, err := e.minor(ctx, 0, mask)
	if err != nil {
		return nil, err
	}

	return v.Clone(), nil
}

// minor expands the partial minor along its first column. The returned node
// may be shared with the cache; callers clone before attaching it.
func (e *expansion) minor(ctx context.Context, col int, mask uint64) (*expr.Node, error) {
	if mask == 0 {
		return expr.Int(1), nil
	}
	if v, ok := e.cache[mask]; ok {
		return v, nil
	}
	if expr.Aborted(ctx) {
		return nil, expr.AbortError(ctx, opDeterminant)
	}
	if len(e.cache) >= e.limit {
		return nil, ErrCacheLimit
	}

	j := e.order[col]
	var terms []*expr.Node
	pos := 0
	for i := 0; i < Rows(e.m); i++ {
		bit := uint64(1) << uint(i)
		if mask&bit == 0 {
			continue
		}
		if a := entry(e.m, i, j); !a.IsZero() {
			sub, err := e.minor(ctx, col+1, mask&^bit)
			if err != nil {
				return nil, err
			}
			if !sub.IsZero() {
				t := expr.Product(a.Clone(), sub.Clone())
				if e.signed && pos%2 == 1 {
					t = expr.Neg(t)
				}
				terms = append(terms, t)
			}
		}
		pos++
	}
	v := expr.Sum(terms...)
	e.cache[mask] = v

	return v, nil
}

// Cofactor returns (−1)^(r+c) times the determinant of m without row r and
// column c. The cofactor of a 1×1 matrix is 1.
func Cofactor(ctx context.Context, m *expr.Node, r, c int, opts ...Option) (*expr.Node, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if err := validateRow(m, r); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if err := validateColumn(m, c); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	v, err := cofactor(ctx, m, r, c, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	return v, nil
}

func cofactor(ctx context.Context, m *expr.Node, r, c int, o Options) (*expr.Node, error) {
	if Rows(m) == 1 {
		return expr.Int(1), nil
	}
	d, err := determinant(ctx, minorOf(m, r, c), o)
	if err != nil {
		return nil, err
	}
	if (r+c)%2 == 1 {
		d = expr.Neg(d)
	}

	return d, nil
}

// Adjoint replaces m by its adjugate, the transpose of its cofactor
// matrix. On failure m is unchanged.
func Adjoint(ctx context.Context, m *expr.Node, opts ...Option) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opAdjoint, err)
	}
	adj, err := adjoint(ctx, m, gatherOptions(opts...))
	if err != nil {
		return matrixErrorf(opAdjoint, err)
	}
	m.Set(adj)

	return nil
}

func adjoint(ctx context.Context, m *expr.Node, o Options) (*expr.Node, error) {
	n := Rows(m)
	rows := make([][]*expr.Node, n)
	for i := range rows {
		rows[i] = make([]*expr.Node, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if expr.Aborted(ctx) {
				return nil, expr.AbortError(ctx, opAdjoint)
			}
			c, err := cofactor(ctx, m, i, j, o)
			if err != nil {
				return nil, err
			}
			rows[j][i] = c
		}
	}

	return expr.MatrixOf(rows...), nil
}
