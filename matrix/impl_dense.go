// SPDX-License-Identifier: MIT

// Package matrix - Dense numeric workspace (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer of number.Number with the explicit index
//     formula i*cols + j, used by the numeric fast paths of Determinant,
//     GaussianElimination and Inverse.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); DenseOf/Node: O(r*c).

package matrix

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcas/expr"
	"github.com/katalvlaran/lvcas/number"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major numeric matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []number.Number
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]number.Number, rows*cols)
	zero := number.New(0)
	for i := range buf {
		buf[i] = zero
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// DenseOf copies a matrix tree whose entries are all Number nodes into a
// Dense. ok is false when m is not a matrix or holds a non-numeric entry.
func DenseOf(m *expr.Node) (d *Dense, ok bool) {
	if !IsMatrix(m) {
		return nil, false
	}
	rows, cols := Rows(m), Cols(m)
	d = &Dense{r: rows, c: cols, data: make([]number.Number, rows*cols)}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			e := entry(m, i, j)
			if !e.IsNumber() {
				return nil, false
			}
			d.data[i*cols+j] = e.Number()
		}
	}

	return d, true
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf validates (row, col) and returns the flat offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns entry (row, col).
func (m *Dense) At(row, col int) (number.Number, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return number.Number{}, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v number.Number) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy. Numbers are immutable values, so copying the
// buffer is enough.
func (m *Dense) Clone() *Dense {
	buf := make([]number.Number, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Node converts the workspace back into a matrix tree.
func (m *Dense) Node() *expr.Node {
	return build(m.r, m.c, func(i, j int) *expr.Node { return expr.Num(m.data[i*m.c+j]) })
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// swapRows exchanges rows i and j in place.
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	ri, rj := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// pivotRow returns the row in [from, r) used as pivot for column col, or −1
// when every candidate is zero. With pivoting the entry of largest
// magnitude wins; magnitudes whose intervals overlap keep the earlier row.
func (m *Dense) pivotRow(col, from int, pivoting bool) int {
	best := -1
	var bestAbs number.Number
	for i := from; i < m.r; i++ {
		v := m.data[i*m.c+col]
		if v.IsZero() {
			continue
		}
		if !pivoting {
			return i
		}
		a := v.Abs()
		if best < 0 {
			best, bestAbs = i, a
			continue
		}
		if c, ok := a.Cmp(bestAbs); ok && c > 0 {
			best, bestAbs = i, a
		}
	}

	return best
}

// eliminate reduces m in place to row echelon form and returns the number
// of non-zero pivot rows together with the permutation sign of the row
// swaps performed.
//
// Implementation:
//   - Stage 1: for each column pick a pivot (pivotRow); skip all-zero columns.
//   - Stage 2: swap it into place, flipping the sign.
//   - Stage 3: subtract multiples of the pivot row from every row below.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(1).
func (m *Dense) eliminate(ctx context.Context, pivoting bool) (rank, sign int, err error) {
	sign = 1
	row := 0
	for col := 0; col < m.c && row < m.r; col++ {
		if expr.Aborted(ctx) {
			return 0, 0, expr.AbortError(ctx, opEliminate)
		}
		p := m.pivotRow(col, row, pivoting)
		if p < 0 {
			continue
		}
		if p != row {
			m.swapRows(p, row)
			sign = -sign
		}
		pivot := m.data[row*m.c+col]
		for i := row + 1; i < m.r; i++ {
			v := m.data[i*m.c+col]
			if v.IsZero() {
				continue
			}
			f, err := v.Div(pivot)
			if err != nil {
				return 0, 0, err
			}
			m.data[i*m.c+col] = number.New(0)
			for j := col + 1; j < m.c; j++ {
				m.data[i*m.c+j] = m.data[i*m.c+j].Sub(f.Mul(m.data[row*m.c+j]))
			}
		}
		row++
	}

	return row, sign, nil
}

// determinant multiplies the echelon diagonal, corrected by the swap sign.
// m is consumed.
func (m *Dense) determinant(ctx context.Context, pivoting bool) (number.Number, error) {
	rank, sign, err := m.eliminate(ctx, pivoting)
	if err != nil {
		return number.Number{}, err
	}
	if rank < m.r {
		return number.New(0), nil
	}
	det := number.New(int64(sign))
	for i := 0; i < m.r; i++ {
		det = det.Mul(m.data[i*m.c+i])
	}

	return det, nil
}

// inverse runs Gauss–Jordan elimination of [m | I] and returns the right
// half. m is consumed.
//
// Errors:
//   - ErrSingular when a column has no usable pivot.
func (m *Dense) inverse(ctx context.Context, pivoting bool) (*Dense, error) {
	n := m.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		inv.data[i*n+i] = number.New(1)
	}
	for col := 0; col < n; col++ {
		if expr.Aborted(ctx) {
			return nil, expr.AbortError(ctx, opInverse)
		}
		p := m.pivotRow(col, col, pivoting)
		if p < 0 {
			return nil, ErrSingular
		}
		m.swapRows(p, col)
		inv.swapRows(p, col)

		pinv, err := m.data[col*n+col].Inv()
		if err != nil {
			return nil, ErrSingular
		}
		for j := 0; j < n; j++ {
			m.data[col*n+j] = m.data[col*n+j].Mul(pinv)
			inv.data[col*n+j] = inv.data[col*n+j].Mul(pinv)
		}
		for i := 0; i < n; i++ {
			f := m.data[i*n+col]
			if i == col || f.IsZero() {
				continue
			}
			for j := 0; j < n; j++ {
				m.data[i*n+j] = m.data[i*n+j].Sub(f.Mul(m.data[col*n+j]))
				inv.data[i*n+j] = inv.data[i*n+j].Sub(f.Mul(inv.data[col*n+j]))
			}
		}
	}

	return inv, nil
}
