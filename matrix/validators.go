// SPDX-License-Identifier: MIT

// Package matrix: central validators. Every public routine funnels its
// shape checks through these helpers so that the same precondition always
// yields the same sentinel.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvcas/expr"
)

// ValidateMatrix returns ErrNotMatrix unless m is a Vector of equal-length,
// non-empty Vector rows.
func ValidateMatrix(m *expr.Node) error {
	if !IsMatrix(m) {
		return ErrNotMatrix
	}

	return nil
}

// ValidateSquare returns ErrNotMatrix or ErrNonSquare.
func ValidateSquare(m *expr.Node) error {
	if err := ValidateMatrix(m); err != nil {
		return err
	}
	if Rows(m) != Cols(m) {
		return ErrNonSquare
	}

	return nil
}

// ValidateSameShape checks both operands are matrices of identical shape.
func ValidateSameShape(a, b *expr.Node) error {
	if err := ValidateMatrix(a); err != nil {
		return err
	}
	if err := ValidateMatrix(b); err != nil {
		return err
	}
	if Rows(a) != Rows(b) || Cols(a) != Cols(b) {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible checks a.Cols == b.Rows.
func ValidateMulCompatible(a, b *expr.Node) error {
	if err := ValidateMatrix(a); err != nil {
		return err
	}
	if err := ValidateMatrix(b); err != nil {
		return err
	}
	if Cols(a) != Rows(b) {
		return ErrDimensionMismatch
	}

	return nil
}

func validateRow(m *expr.Node, r int) error {
	if r < 0 || r >= Rows(m) {
		return fmt.Errorf("row %d: %w", r, ErrOutOfRange)
	}

	return nil
}

func validateColumn(m *expr.Node, c int) error {
	if c < 0 || c >= Cols(m) {
		return fmt.Errorf("column %d: %w", c, ErrOutOfRange)
	}

	return nil
}
