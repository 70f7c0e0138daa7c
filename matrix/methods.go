// SPDX-License-Identifier: MIT

// Package matrix: in-place row and column manipulation.
//
// Every method validates the shape and the indices before touching m, so a
// failed call leaves m unchanged. Parent flags (approximate, precision) are
// refreshed after each edit.

package matrix

import (
	"github.com/katalvlaran/lvcas/expr"
)

// swapRowNodes exchanges rows i and j without checks.
func swapRowNodes(m *expr.Node, i, j int) {
	if i == j {
		return
	}
	a, b := m.Child(i), m.Child(j)
	m.SetChild(i, b)
	m.SetChild(j, a)
}

// SwapRows exchanges rows i and j.
func SwapRows(m *expr.Node, i, j int) error {
	if err := ValidateMatrix(m); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := validateRow(m, i); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := validateRow(m, j); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	swapRowNodes(m, i, j)

	return nil
}

// SwapColumns exchanges columns i and j.
func SwapColumns(m *expr.Node, i, j int) error {
	if err := ValidateMatrix(m); err != nil {
		return matrixErrorf(opSwapColumns, err)
	}
	if err := validateColumn(m, i); err != nil {
		return matrixErrorf(opSwapColumns, err)
	}
	if err := validateColumn(m, j); err != nil {
		return matrixErrorf(opSwapColumns, err)
	}
	if i == j {
		return nil
	}
	for r := 0; r < Rows(m); r++ {
		row := m.Child(r)
		a, b := row.Child(i), row.Child(j)
		row.SetChild(i, b)
		row.SetChild(j, a)
	}

	return nil
}

// DeleteRow removes row r. The last row cannot be removed.
func DeleteRow(m *expr.Node, r int) error {
	if err := ValidateMatrix(m); err != nil {
		return matrixErrorf(opDeleteRow, err)
	}
	if err := validateRow(m, r); err != nil {
		return matrixErrorf(opDeleteRow, err)
	}
	if Rows(m) == 1 {
		return matrixErrorf(opDeleteRow, ErrInvalidDimensions)
	}
	m.DeleteChild(r)

	return nil
}

// DeleteColumn removes column c. The last column cannot be removed.
func DeleteColumn(m *expr.Node, c int) error {
	if err := ValidateMatrix(m); err != nil {
		return matrixErrorf(opDeleteColumn, err)
	}
	if err := validateColumn(m, c); err != nil {
		return matrixErrorf(opDeleteColumn, err)
	}
	if Cols(m) == 1 {
		return matrixErrorf(opDeleteColumn, ErrInvalidDimensions)
	}
	for r := 0; r < Rows(m); r++ {
		row := m.Child(r)
		row.DeleteChild(c)
		m.SetChild(r, row)
	}

	return nil
}

// ScaleRow multiplies every entry of row r by f. f is only read.
func ScaleRow(m *expr.Node, r int, f *expr.Node) error {
	if err := ValidateMatrix(m); err != nil {
		return matrixErrorf(opScaleRow, err)
	}
	if err := validateRow(m, r); err != nil {
		return matrixErrorf(opScaleRow, err)
	}
	row := m.Child(r)
	for j := 0; j < row.Len(); j++ {
		row.SetChild(j, expr.Product(f.Clone(), row.Child(j)))
	}
	m.SetChild(r, row)

	return nil
}

// AddRowMultiple adds f times row src to row dst. f is only read.
func AddRowMultiple(m *expr.Node, dst, src int, f *expr.Node) error {
	if err := ValidateMatrix(m); err != nil {
		return matrixErrorf(opAddRow, err)
	}
	if err := validateRow(m, dst); err != nil {
		return matrixErrorf(opAddRow, err)
	}
	if err := validateRow(m, src); err != nil {
		return matrixErrorf(opAddRow, err)
	}
	s := m.Child(src).Clone()
	row := m.Child(dst)
	for j := 0; j < row.Len(); j++ {
		row.SetChild(j, expr.Sum(row.Child(j), expr.Product(f.Clone(), s.Child(j))))
	}
	m.SetChild(dst, row)

	return nil
}

// Minor returns a copy of m without row r and column c.
func Minor(m *expr.Node, r, c int) (*expr.Node, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := validateRow(m, r); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := validateColumn(m, c); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if Rows(m) == 1 || Cols(m) == 1 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}

	return minorOf(m, r, c), nil
}

// minorOf builds the minor without checks; m has at least two rows and
// two columns.
func minorOf(m *expr.Node, r, c int) *expr.Node {
	return build(Rows(m)-1, Cols(m)-1, func(i, j int) *expr.Node {
		if i >= r {
			i++
		}
		if j >= c {
			j++
		}
		return entry(m, i, j).Clone()
	})
}
