// Package matrix implements matrix algebra over expression trees.
//
// A matrix is an expr Vector of equal-length Vector rows. The package
// provides:
//
//   - Shape queries and constructors (IsMatrix, Rows, Cols, At, New, Identity).
//   - Elementwise and product operations (Add, Mul, Transpose, Scale).
//   - Determinant, Permanent, Cofactor and Adjoint. Orders up to 3 use
//     closed forms; larger numeric matrices use pivoted elimination and
//     larger symbolic ones a memoized minor expansion.
//   - GaussianElimination, Rank and Inverse.
//   - In-place row and column manipulation.
//
// Numeric fast paths run on Dense, a flat row-major workspace of exact or
// interval numbers. Every size-dependent loop polls the context and returns
// an error wrapping ctx.Err() on cancellation; mutating routines commit
// nothing on failure.
package matrix
