// SPDX-License-Identifier: MIT

package matrix

import (
	"context"

	"github.com/katalvlaran/lvcas/expr"
)

// GaussianElimination reduces m in place to row echelon form. Numeric
// matrices use the Dense kernel (partial pivoting unless disabled);
// symbolic ones pivot on the first entry that is provably non-zero and
// expand every updated entry. On failure m is unchanged.
func GaussianElimination(ctx context.Context, m *expr.Node, opts ...Option) error {
	if err := ValidateMatrix(m); err != nil {
		return matrixErrorf(opEliminate, err)
	}
	o := gatherOptions(opts...)

	if d, ok := DenseOf(m); ok {
		if _, _, err := d.eliminate(ctx, o.pivoting); err != nil {
			return matrixErrorf(opEliminate, err)
		}
		m.Set(d.Node())
		return nil
	}
	w := m.Clone()
	if _, err := eliminateSymbolic(ctx, w); err != nil {
		return matrixErrorf(opEliminate, err)
	}
	m.Set(w)

	return nil
}

// Rank returns the number of non-zero rows of the echelon form of m. For
// symbolic matrices a column whose entries are not provably non-zero gives
// no pivot, so the result is a lower bound.
func Rank(ctx context.Context, m *expr.Node, opts ...Option) (int, error) {
	if err := ValidateMatrix(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := gatherOptions(opts...)

	if d, ok := DenseOf(m); ok {
		rank, _, err := d.eliminate(ctx, o.pivoting)
		if err != nil {
			return 0, matrixErrorf(opRank, err)
		}
		return rank, nil
	}
	rank, err := eliminateSymbolic(ctx, m.Clone())
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return rank, nil
}

// eliminateSymbolic runs forward elimination on w and returns the number
// of pivot rows.
func eliminateSymbolic(ctx context.Context, w *expr.Node) (int, error) {
	rows, cols := Rows(w), Cols(w)
	row := 0
	for col := 0; col < cols && row < rows; col++ {
		if expr.Aborted(ctx) {
			return 0, expr.AbortError(ctx, opEliminate)
		}
		p := -1
		for i := row; i < rows; i++ {
			if entry(w, i, col).Represents(expr.PropNonZero) {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		swapRowNodes(w, p, row)
		pivot := entry(w, row, col)
		for i := row + 1; i < rows; i++ {
			if entry(w, i, col).IsZero() {
				continue
			}
			f := expr.Div(entry(w, i, col).Clone(), pivot.Clone())
			if err := f.Expand(ctx); err != nil {
				return 0, err
			}
			r := w.Child(i)
			r.SetChild(col, expr.Int(0))
			for j := col + 1; j < cols; j++ {
				d := expr.Sub(entry(w, i, j).Clone(), expr.Product(f.Clone(), entry(w, row, j).Clone()))
				if err := d.Expand(ctx); err != nil {
					return 0, err
				}
				r.SetChild(j, d)
			}
			w.SetChild(i, r)
		}
		row++
	}

	return row, nil
}
