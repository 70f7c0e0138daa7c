// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms return these sentinels (wrapped with an operation
// tag) and tests check them via errors.Is. No routine panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Facades wrap with matrixErrorf(op, ErrX); callers match with errors.Is.
//
// ERROR PRIORITY:
// not a matrix -> shape/index -> dimension mismatch -> singular -> resource guards.

var (
	// ErrNotMatrix is returned when a tree is not a Vector of equal-length,
	// non-empty Vector rows.
	ErrNotMatrix = errors.New("matrix: not a matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when an inverse does not exist.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrCacheLimit is returned when the memoized minor expansion would hold
	// more partial minors than the configured limit.
	ErrCacheLimit = errors.New("matrix: minor cache limit exceeded")
)

// Operation name constants for unified error wrapping.
const (
	opAdd          = "Add"
	opMul          = "Mul"
	opScale        = "Scale"
	opTranspose    = "Transpose"
	opDeterminant  = "Determinant"
	opPermanent    = "Permanent"
	opEliminate    = "GaussianElimination"
	opRank         = "Rank"
	opInverse      = "Inverse"
	opAdjoint      = "Adjoint"
	opCofactor     = "Cofactor"
	opMinor        = "Minor"
	opSwapRows     = "SwapRows"
	opSwapColumns  = "SwapColumns"
	opDeleteRow    = "DeleteRow"
	opDeleteColumn = "DeleteColumn"
	opScaleRow     = "ScaleRow"
	opAddRow       = "AddRowMultiple"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
