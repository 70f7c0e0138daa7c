// SPDX-License-Identifier: MIT

// Package matrix: shape queries and constructors over expression trees.
//
// A matrix is an expr Vector whose children are equal-length Vector rows.
// Every routine of this package accepts such a tree; the ones that mutate
// do so in place and leave the input untouched on failure.

package matrix

import (
	"github.com/katalvlaran/lvcas/expr"
)

// IsMatrix reports whether m is a Vector of at least one Vector row, all
// rows non-empty and of equal length.
func IsMatrix(m *expr.Node) bool {
	if m == nil || !m.Is(expr.KindVector) || m.Len() == 0 {
		return false
	}
	cols := -1
	for i := 0; i < m.Len(); i++ {
		r := m.Child(i)
		if !r.Is(expr.KindVector) || r.Len() == 0 {
			return false
		}
		if cols >= 0 && r.Len() != cols {
			return false
		}
		cols = r.Len()
	}

	return true
}

// IsSquare reports whether m is a matrix with as many rows as columns.
func IsSquare(m *expr.Node) bool { return ValidateSquare(m) == nil }

// Rows returns the number of rows. Callers validate m first.
func Rows(m *expr.Node) int { return m.Len() }

// Cols returns the number of columns. Callers validate m first.
func Cols(m *expr.Node) int { return m.Child(0).Len() }

// At returns entry (i, j), shared with m.
func At(m *expr.Node, i, j int) (*expr.Node, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, err
	}
	if err := validateRow(m, i); err != nil {
		return nil, err
	}
	if err := validateColumn(m, j); err != nil {
		return nil, err
	}

	return m.Child(i).Child(j), nil
}

// entry returns (i, j) without checks.
func entry(m *expr.Node, i, j int) *expr.Node { return m.Child(i).Child(j) }

// New returns a rows×cols zero matrix.
func New(rows, cols int) (*expr.Node, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return build(rows, cols, func(int, int) *expr.Node { return expr.Int(0) }), nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*expr.Node, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return build(n, n, func(i, j int) *expr.Node {
		if i == j {
			return expr.Int(1)
		}
		return expr.Int(0)
	}), nil
}

// build assembles a rows×cols matrix from f, which must return a fresh node.
func build(rows, cols int, f func(i, j int) *expr.Node) *expr.Node {
	rs := make([][]*expr.Node, rows)
	for i := range rs {
		rs[i] = make([]*expr.Node, cols)
		for j := range rs[i] {
			rs[i][j] = f(i, j)
		}
	}

	return expr.MatrixOf(rs...)
}
