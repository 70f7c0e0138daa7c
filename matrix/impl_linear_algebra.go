// SPDX-License-Identifier: MIT
// Package matrix provides elementwise and product operations on matrix
// trees: Add, Mul, Transpose, Scale. All functions validate shapes first,
// return new trees (inputs are only read) and wrap failures with the
// operation tag.
//
// Entries are combined with the canonical constructors of package expr, so
// numeric entries fold and like symbolic terms merge as they are built.

package matrix

import (
	"github.com/katalvlaran/lvcas/expr"
)

// Add returns a + b.
//
// Errors:
//   - ErrNotMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c).
func Add(a, b *expr.Node) (*expr.Node, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return build(Rows(a), Cols(a), func(i, j int) *expr.Node {
		return expr.Sum(entry(a, i, j).Clone(), entry(b, i, j).Clone())
	}), nil
}

// Mul returns the matrix product a·b. Entry order inside each product is
// preserved, so symbolic non-commuting entries stay correct.
//
// Errors:
//   - ErrNotMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c).
func Mul(a, b *expr.Node) (*expr.Node, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n := Cols(a)

	return build(Rows(a), Cols(b), func(i, j int) *expr.Node {
		terms := make([]*expr.Node, 0, n)
		for k := 0; k < n; k++ {
			terms = append(terms, expr.Product(entry(a, i, k).Clone(), entry(b, k, j).Clone()))
		}
		return expr.Sum(terms...)
	}), nil
}

// Transpose returns mᵀ.
func Transpose(m *expr.Node) (*expr.Node, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return build(Cols(m), Rows(m), func(i, j int) *expr.Node { return entry(m, j, i).Clone() }), nil
}

// Scale returns s·m. s is only read.
func Scale(m, s *expr.Node) (*expr.Node, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return build(Rows(m), Cols(m), func(i, j int) *expr.Node {
		return expr.Product(s.Clone(), entry(m, i, j).Clone())
	}), nil
}
